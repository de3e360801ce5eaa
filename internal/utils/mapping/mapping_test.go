package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMapping_NullableDossier(t *testing.T) {
	m := ToModelPayment(domain.Payment{PaymentID: "p1", ClientID: "c1"})
	assert.Nil(t, m.DossierID)

	m = ToModelPayment(domain.Payment{PaymentID: "p1", ClientID: "c1", DossierID: "d1"})
	require.NotNil(t, m.DossierID)
	assert.Equal(t, "d1", *m.DossierID)

	d := ToDomainPayment(models.Payment{PaymentID: "p1"})
	assert.Equal(t, "", d.DossierID)
	assert.NotNil(t, d.Installments)
}

func TestTransactionListRowMapping(t *testing.T) {
	paymentID, clientID, name := "p1", "c1", "John Doe"
	row := models.TransactionListRow{
		Transaction:    models.Transaction{TransactionID: "t1", CaisseID: "k1", PaymentID: &paymentID, Type: "INCOME"},
		CaisseName:     "Main",
		CaisseType:     "CASH",
		ClientID:       &clientID,
		ClientFullName: &name,
	}
	txn := ToDomainTransactionListRow(row)
	require.NotNil(t, txn.Caisse)
	assert.Equal(t, "Main", txn.Caisse.Name)
	require.NotNil(t, txn.Payment)
	assert.Equal(t, "John Doe", txn.Payment.ClientFullName)

	row.PaymentID = nil
	assert.Nil(t, ToDomainTransactionListRow(row).Payment)
}

func TestFinancialReportMapping_CaisseBalances(t *testing.T) {
	report := domain.FinancialReport{
		ReportID:    "r1",
		TotalIncome: decimal.NewFromInt(1000),
		CaisseBalances: map[string]domain.CaisseSnapshot{
			"k1": {Name: "Main", Type: domain.CaisseCash, Balance: decimal.RequireFromString("250.75")},
		},
		CreatedAt: time.Now(),
	}
	m, err := ToModelFinancialReport(report)
	require.NoError(t, err)

	back, err := ToDomainFinancialReport(m)
	require.NoError(t, err)
	require.Contains(t, back.CaisseBalances, "k1")
	assert.True(t, decimal.RequireFromString("250.75").Equal(back.CaisseBalances["k1"].Balance))
	assert.Equal(t, domain.CaisseCash, back.CaisseBalances["k1"].Type)
}
