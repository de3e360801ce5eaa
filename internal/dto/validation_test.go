package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientRequest_Validate(t *testing.T) {
	valid := CreateClientRequest{FullName: "John Doe", ClientType: domain.ClientIndividual, PassportNumber: "P123"}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.ClientType = "ALIEN"
	err := badType.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "ClientType")

	missingName := valid
	missingName.FullName = ""
	assert.ErrorIs(t, missingName.Validate(), apperrors.ErrValidation)

	badPhone := valid
	badPhone.PhoneNumbers = []PhoneNumberInput{{Number: ""}}
	assert.ErrorIs(t, badPhone.Validate(), apperrors.ErrValidation)

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.ErrorIs(t, badEmail.Validate(), apperrors.ErrValidation)
}

func TestUpdateClientRequest_ValidateCollections(t *testing.T) {
	members := []FamilyMemberInput{{FullName: "Jane"}}
	req := UpdateClientRequest{FamilyMembers: &members}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Relationship is required")

	empty := []FamilyMemberInput{}
	assert.NoError(t, UpdateClientRequest{FamilyMembers: &empty}.Validate())
}

func TestCreatePaymentRequest_Validate(t *testing.T) {
	due := Date{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	req := CreatePaymentRequest{
		TotalAmount:     decimal.NewFromInt(1000),
		PaymentOption:   domain.PaymentCash,
		PaymentModality: domain.ModalityInstallments,
		Installments:    []InstallmentInput{{Percentage: decimal.NewFromInt(100), DueDate: due}},
	}
	assert.NoError(t, req.Validate())

	noInstallments := req
	noInstallments.Installments = nil
	assert.ErrorIs(t, noInstallments.Validate(), apperrors.ErrValidation)

	zeroTotal := req
	zeroTotal.TotalAmount = decimal.Zero
	assert.ErrorIs(t, zeroTotal.Validate(), apperrors.ErrValidation)

	badPct := req
	badPct.Installments = []InstallmentInput{{Percentage: decimal.NewFromInt(101), DueDate: due}}
	assert.ErrorIs(t, badPct.Validate(), apperrors.ErrValidation)

	noDue := req
	noDue.Installments = []InstallmentInput{{Percentage: decimal.NewFromInt(100)}}
	assert.ErrorIs(t, noDue.Validate(), apperrors.ErrValidation)
}

func TestServiceItemInput_Validate(t *testing.T) {
	ok := ServiceItemInput{ServiceType: domain.ServiceVisa, Quantity: 1, UnitPrice: decimal.NewFromInt(80)}
	assert.NoError(t, ok.Validate())

	zeroQty := ok
	zeroQty.Quantity = 0
	assert.ErrorIs(t, zeroQty.Validate(), apperrors.ErrValidation)

	negative := ok
	negative.UnitPrice = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negative.Validate(), apperrors.ErrValidation)
}

func TestDate_JSON(t *testing.T) {
	var body struct {
		A Date  `json:"a"`
		B Date  `json:"b"`
		C *Date `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2025-06-01","b":"2025-06-01T15:04:05+02:00","c":null}`), &body))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), body.A.Time)
	assert.Equal(t, time.Date(2025, 6, 1, 13, 4, 5, 0, time.UTC), body.B.Time)
	assert.Nil(t, body.C.TimePtr())

	out, err := json.Marshal(body.A)
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-06-01"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a":"01/06/2025"}`), &body))
}

func TestListTransactionsParams_ToFilter(t *testing.T) {
	filter, err := ListTransactionsParams{CaisseID: "c1", Type: domain.Income, StartDate: "2025-01-01", EndDate: "2025-01-31"}.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, "c1", filter.CaisseID)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	assert.True(t, filter.EndDate.After(time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC)))

	_, err = ListTransactionsParams{Type: "GIFT"}.ToFilter()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateReportParams_Range(t *testing.T) {
	_, _, err := GenerateReportParams{StartDate: "2025-02-01", EndDate: "2025-01-01"}.Range()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = GenerateReportParams{StartDate: "2025-01-01"}.Range()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	from, to, err := GenerateReportParams{StartDate: "2025-01-01", EndDate: "2025-01-01"}.Range()
	require.NoError(t, err)
	assert.True(t, to.After(from))
}

func TestToDossierResponse_Totals(t *testing.T) {
	d := domain.Dossier{
		DossierID: "d1",
		ServiceItems: []domain.ServiceItem{
			{Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			{Quantity: 1, UnitPrice: decimal.NewFromInt(25)},
		},
	}
	res := ToDossierResponse(&d)
	assert.True(t, decimal.NewFromInt(125).Equal(res.TotalAmount))
	assert.Equal(t, 2, res.ServicesCount)
	assert.Equal(t, 0, res.PaymentsCount)
}

func TestCreateTransactionRequest_CaisseIDMustBeUUID(t *testing.T) {
	req := CreateTransactionRequest{CaisseID: "k-1", Type: domain.Income, Amount: decimal.NewFromInt(10)}
	err := req.Validate()
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "CaisseID must be a valid UUID")

	req.CaisseID = "7f8e9d0c-1b2a-4394-8576-a5b4c3d2e1f0"
	assert.NoError(t, req.Validate())
}

func TestToDomainInstallments_ReportsGivenAmounts(t *testing.T) {
	zero := decimal.Zero
	insts, given := ToDomainInstallments([]InstallmentInput{
		{Percentage: decimal.NewFromInt(50), Amount: &zero},
		{Percentage: decimal.NewFromInt(50)},
	})
	require.Len(t, insts, 2)
	assert.Equal(t, []bool{true, false}, given)
	assert.True(t, insts[0].Amount.IsZero())
	assert.Equal(t, domain.InstallmentPending, insts[1].Status)
}
