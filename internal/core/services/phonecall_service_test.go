package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/core/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PhoneCallServiceTestSuite struct {
	suite.Suite
	clientRepo      *MockClientRepository
	dossierRepo     *MockDossierRepository
	serviceItemRepo *MockServiceItemRepository
	paymentRepo     *MockPaymentRepository
	service         portssvc.PhoneCallSvc
}

func (suite *PhoneCallServiceTestSuite) SetupTest() {
	suite.clientRepo = new(MockClientRepository)
	suite.dossierRepo = new(MockDossierRepository)
	suite.serviceItemRepo = new(MockServiceItemRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.service = services.NewPhoneCallService(suite.clientRepo, suite.dossierRepo, suite.serviceItemRepo, suite.paymentRepo, services.WithClock(fixedClock))
}

func dateOf(t time.Time) dto.Date {
	return dto.Date{Time: t}
}

func phoneCallRequest(percentages ...string) dto.CreatePhoneCallClientRequest {
	installments := make([]dto.InstallmentInput, len(percentages))
	for i, p := range percentages {
		installments[i] = dto.InstallmentInput{
			Description: "tranche",
			Percentage:  decimal.RequireFromString(p),
			DueDate:     dateOf(fixedNow.AddDate(0, i+1, 0)),
		}
	}
	return dto.CreatePhoneCallClientRequest{
		CreateClientRequest: dto.CreateClientRequest{
			FullName:   "Nadia Hamdi",
			ClientType: domain.ClientPhoneCall,
			FamilyMembers: []dto.FamilyMemberInput{
				{FullName: "Ignored", Relationship: "frere"},
			},
		},
		Services: []dto.ServiceItemInput{
			{ServiceType: domain.ServiceVisa, Quantity: 2, UnitPrice: decimal.NewFromInt(300)},
			{ServiceType: domain.ServiceTravelInsurance, Quantity: 1, UnitPrice: decimal.NewFromInt(400)},
		},
		PaymentConfig: dto.PaymentConfigInput{
			PaymentOption:   domain.PaymentCash,
			PaymentModality: domain.ModalityInstallments,
			Installments:    installments,
		},
	}
}

func (suite *PhoneCallServiceTestSuite) TestCreatePhoneCallClient_ExactHundred_Succeeds() {
	ctx := context.Background()
	tx := expectTx(&suite.clientRepo.mockTxManager, true)
	var clientID string

	suite.clientRepo.On("SaveClientInTx", mock.Anything, tx, mock.MatchedBy(func(c domain.Client) bool {
		clientID = c.ClientID
		return c.ClientType == domain.ClientPhoneCall && c.PassportNumber == "" && len(c.FamilyMembers) == 0
	})).Return(nil).Once()
	suite.dossierRepo.On("SaveDossierInTx", mock.Anything, tx, mock.MatchedBy(func(d domain.Dossier) bool {
		return d.Status == domain.DossierInProgress
	})).Return(nil).Once()
	suite.serviceItemRepo.On("SaveServiceItemsInTx", mock.Anything, tx, mock.MatchedBy(func(items []domain.ServiceItem) bool {
		return len(items) == 2 && items[0].LineTotal().Equal(decimal.NewFromInt(600))
	})).Return(nil).Once()
	suite.paymentRepo.On("SavePaymentInTx", mock.Anything, tx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.TotalAmount.Equal(decimal.NewFromInt(1000)) &&
			len(p.Installments) == 2 &&
			p.Installments[0].Amount.Equal(decimal.NewFromInt(300)) &&
			p.Installments[1].Amount.Equal(decimal.NewFromInt(700)) &&
			p.Installments[0].PaymentID == p.PaymentID &&
			p.Installments[0].Status == domain.InstallmentPending
	})).Return(nil).Once()
	suite.clientRepo.On("FindClientByID", ctx, mock.Anything).Return(&domain.Client{ClientType: domain.ClientPhoneCall}, nil).Once()
	suite.dossierRepo.On("ListDossiers", ctx, mock.Anything).Return([]domain.Dossier{{Status: domain.DossierInProgress}}, nil).Once()

	client, err := suite.service.CreatePhoneCallClient(ctx, phoneCallRequest("30", "70"), "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.NotEmpty(clientID)
	suite.Len(client.Dossiers, 1)
	suite.clientRepo.AssertExpectations(suite.T())
	suite.dossierRepo.AssertExpectations(suite.T())
	suite.serviceItemRepo.AssertExpectations(suite.T())
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *PhoneCallServiceTestSuite) TestCreatePhoneCallClient_PercentagesNotExactlyHundred_NothingSaved() {
	for _, pcts := range [][]string{{"30", "69"}, {"50", "49.995"}} {
		_, err := suite.service.CreatePhoneCallClient(context.Background(), phoneCallRequest(pcts...), "user-1")

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Contains(err.Error(), "exactly 100")
	}
	suite.clientRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
	suite.paymentRepo.AssertNotCalled(suite.T(), "SavePaymentInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PhoneCallServiceTestSuite) TestCreatePhoneCallClient_BankTransferDueToday_NeedsCode() {
	req := phoneCallRequest("100")
	req.PaymentConfig.PaymentOption = domain.PaymentBankTransfer
	req.PaymentConfig.Installments[0].DueDate = dateOf(fixedNow)

	_, err := suite.service.CreatePhoneCallClient(context.Background(), req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "transferCode")
	suite.clientRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PhoneCallServiceTestSuite) TestCreatePhoneCallClient_ExplicitAmountMismatch() {
	req := phoneCallRequest("50", "50")
	req.PaymentConfig.TotalAmount = decimal.NewFromInt(1000)
	amount := decimal.NewFromInt(450)
	req.PaymentConfig.Installments[0].Amount = &amount

	_, err := suite.service.CreatePhoneCallClient(context.Background(), req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "expected 500.00")
}

func (suite *PhoneCallServiceTestSuite) TestCreatePhoneCallClient_WrongClientType() {
	req := phoneCallRequest("100")
	req.ClientType = domain.ClientIndividual

	_, err := suite.service.CreatePhoneCallClient(context.Background(), req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PhoneCallServiceTestSuite) TestCreatePhoneCallClient_PaymentFailureRollsBack() {
	tx := expectTx(&suite.clientRepo.mockTxManager, false)
	suite.clientRepo.On("SaveClientInTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
	suite.dossierRepo.On("SaveDossierInTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
	suite.serviceItemRepo.On("SaveServiceItemsInTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
	suite.paymentRepo.On("SavePaymentInTx", mock.Anything, tx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	client, err := suite.service.CreatePhoneCallClient(context.Background(), phoneCallRequest("100"), "user-1")

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.clientRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, tx)
	suite.clientRepo.AssertCalled(suite.T(), "Rollback", mock.Anything, tx)
}

func TestPhoneCallServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PhoneCallServiceTestSuite))
}
