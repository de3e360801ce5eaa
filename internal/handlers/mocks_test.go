package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, pagination.Meta, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, pagination.Meta{}, args.Error(2)
	}
	return args.Get(0).([]domain.Client), args.Get(1).(pagination.Meta), args.Error(2)
}
func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}
func (m *MockClientService) AddFamilyMember(ctx context.Context, clientID string, req dto.FamilyMemberInput) (*domain.FamilyMember, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyMember), args.Error(1)
}
func (m *MockClientService) RemoveFamilyMember(ctx context.Context, familyMemberID string) error {
	return m.Called(ctx, familyMemberID).Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock PhoneCallService ---
type MockPhoneCallService struct {
	mock.Mock
}

func (m *MockPhoneCallService) CreatePhoneCallClient(ctx context.Context, req dto.CreatePhoneCallClientRequest, userID string) (*domain.Client, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

var _ portssvc.PhoneCallSvc = (*MockPhoneCallService)(nil)

// --- Mock DossierService ---
type MockDossierService struct {
	mock.Mock
}

func (m *MockDossierService) CreateDossier(ctx context.Context, req dto.CreateDossierRequest, userID string) (*domain.Dossier, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}
func (m *MockDossierService) GetDossier(ctx context.Context, dossierID string) (*domain.Dossier, error) {
	args := m.Called(ctx, dossierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}
func (m *MockDossierService) ListDossiers(ctx context.Context, clientID string) ([]domain.Dossier, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dossier), args.Error(1)
}
func (m *MockDossierService) UpdateDossier(ctx context.Context, dossierID string, req dto.UpdateDossierRequest, userID string) (*domain.Dossier, error) {
	args := m.Called(ctx, dossierID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}
func (m *MockDossierService) DeleteDossier(ctx context.Context, dossierID string) error {
	return m.Called(ctx, dossierID).Error(0)
}

var _ portssvc.DossierSvcFacade = (*MockDossierService)(nil)

// --- Mock ServiceItemService ---
type MockServiceItemService struct {
	mock.Mock
}

func (m *MockServiceItemService) ListDossierServices(ctx context.Context, dossierID string) ([]domain.ServiceItem, error) {
	args := m.Called(ctx, dossierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceItem), args.Error(1)
}
func (m *MockServiceItemService) ListClientServices(ctx context.Context, clientID string) ([]domain.ServiceItem, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceItem), args.Error(1)
}
func (m *MockServiceItemService) GetClientServicesTotal(ctx context.Context, clientID string) (int, decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	return args.Int(0), args.Get(1).(decimal.Decimal), args.Error(2)
}
func (m *MockServiceItemService) GetLastPrice(ctx context.Context, serviceType domain.ServiceType) (*decimal.Decimal, error) {
	args := m.Called(ctx, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}
func (m *MockServiceItemService) GetLastPrices(ctx context.Context, serviceTypes []domain.ServiceType) (map[domain.ServiceType]decimal.Decimal, error) {
	args := m.Called(ctx, serviceTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.ServiceType]decimal.Decimal), args.Error(1)
}
func (m *MockServiceItemService) CreateService(ctx context.Context, dossierID string, req dto.ServiceItemInput, userID string) (*domain.ServiceItem, error) {
	args := m.Called(ctx, dossierID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceItem), args.Error(1)
}
func (m *MockServiceItemService) CreateManyServices(ctx context.Context, dossierID string, req dto.CreateServiceItemsRequest, userID string) ([]domain.ServiceItem, error) {
	args := m.Called(ctx, dossierID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceItem), args.Error(1)
}
func (m *MockServiceItemService) UpdateService(ctx context.Context, serviceItemID string, req dto.UpdateServiceItemRequest, userID string) (*domain.ServiceItem, error) {
	args := m.Called(ctx, serviceItemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceItem), args.Error(1)
}
func (m *MockServiceItemService) DeleteService(ctx context.Context, serviceItemID string) error {
	return m.Called(ctx, serviceItemID).Error(0)
}

var _ portssvc.ServiceItemSvcFacade = (*MockServiceItemService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetClientPayments(ctx context.Context, clientID string) ([]domain.Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) CreatePayment(ctx context.Context, clientID string, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, clientID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	return m.Called(ctx, paymentID).Error(0)
}
func (m *MockPaymentService) MarkInstallmentPaid(ctx context.Context, installmentID string, req dto.MarkInstallmentPaidRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, installmentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock FinancialService ---
type MockFinancialService struct {
	mock.Mock
}

func (m *MockFinancialService) CreateCaisse(ctx context.Context, req dto.CreateCaisseRequest, userID string) (*domain.Caisse, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Caisse), args.Error(1)
}
func (m *MockFinancialService) GetAllCaisses(ctx context.Context) ([]domain.Caisse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Caisse), args.Error(1)
}
func (m *MockFinancialService) GetCaisseByID(ctx context.Context, caisseID string) (*domain.Caisse, error) {
	args := m.Called(ctx, caisseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Caisse), args.Error(1)
}
func (m *MockFinancialService) UpdateCaisseBalance(ctx context.Context, caisseID string, amount decimal.Decimal, txType domain.TransactionType, userID string) (*domain.Caisse, error) {
	args := m.Called(ctx, caisseID, amount, txType, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Caisse), args.Error(1)
}
func (m *MockFinancialService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockFinancialService) GetTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockFinancialService) GenerateFinancialReport(ctx context.Context, start, end time.Time, userID string) (*domain.FinancialReport, error) {
	args := m.Called(ctx, start, end, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}
func (m *MockFinancialService) ListFinancialReports(ctx context.Context) ([]domain.FinancialReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialReport), args.Error(1)
}
func (m *MockFinancialService) TaxRate() decimal.Decimal {
	return m.Called().Get(0).(decimal.Decimal)
}
func (m *MockFinancialService) CalculateTaxForClient(total decimal.Decimal) decimal.Decimal {
	return m.Called(total).Get(0).(decimal.Decimal)
}
func (m *MockFinancialService) CalculateProfitForClient(total, expenses decimal.Decimal) decimal.Decimal {
	return m.Called(total, expenses).Get(0).(decimal.Decimal)
}

var _ portssvc.FinancialSvcFacade = (*MockFinancialService)(nil)

// --- Mock AttachmentService ---
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Upload(ctx context.Context, clientID string, attachmentType domain.AttachmentType, file portssvc.UploadFile, userID string) (*domain.Attachment, error) {
	args := m.Called(ctx, clientID, attachmentType, file, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}
func (m *MockAttachmentService) ListClientAttachments(ctx context.Context, clientID string) ([]domain.Attachment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}
func (m *MockAttachmentService) GetAttachment(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}
func (m *MockAttachmentService) Open(ctx context.Context, attachmentID string) (*domain.Attachment, io.ReadCloser, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Attachment), args.Get(1).(io.ReadCloser), args.Error(2)
}
func (m *MockAttachmentService) Delete(ctx context.Context, attachmentID string) error {
	return m.Called(ctx, attachmentID).Error(0)
}

var _ portssvc.AttachmentSvcFacade = (*MockAttachmentService)(nil)
