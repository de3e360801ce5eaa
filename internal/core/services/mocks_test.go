package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a pgx.Tx; repositories under test never touch it.
type fakeTx struct {
	pgx.Tx
}

// --- Transaction manager shared by the *WithTx mocks ---
type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx registers Begin/Rollback and, when commit is true, Commit on m and returns the transaction.
func expectTx(m *mockTxManager, commit bool) pgx.Tx {
	tx := &fakeTx{}
	m.On("Begin", mock.Anything).Return(tx, nil).Once()
	m.On("Rollback", mock.Anything, tx).Return(nil).Maybe()
	if commit {
		m.On("Commit", mock.Anything, tx).Return(nil).Once()
	}
	return tx
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mockTxManager
}

var _ portsrepo.ClientRepositoryWithTx = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Client), args.Int(1), args.Error(2)
}

func (m *MockClientRepository) FindFamilyMemberByID(ctx context.Context, familyMemberID string) (*domain.FamilyMember, error) {
	args := m.Called(ctx, familyMemberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FamilyMember), args.Error(1)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

func (m *MockClientRepository) SaveFamilyMember(ctx context.Context, member domain.FamilyMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockClientRepository) DeleteFamilyMember(ctx context.Context, familyMemberID string) error {
	return m.Called(ctx, familyMemberID).Error(0)
}

func (m *MockClientRepository) SaveClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	return m.Called(ctx, tx, client).Error(0)
}

func (m *MockClientRepository) UpdateClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	return m.Called(ctx, tx, client).Error(0)
}

func (m *MockClientRepository) ReplacePhoneNumbersInTx(ctx context.Context, tx pgx.Tx, clientID string, phones []domain.PhoneNumber) error {
	return m.Called(ctx, tx, clientID, phones).Error(0)
}

func (m *MockClientRepository) ReplaceEmployersInTx(ctx context.Context, tx pgx.Tx, clientID string, employers []domain.Employer) error {
	return m.Called(ctx, tx, clientID, employers).Error(0)
}

func (m *MockClientRepository) ReplaceFamilyMembersInTx(ctx context.Context, tx pgx.Tx, clientID string, members []domain.FamilyMember) error {
	return m.Called(ctx, tx, clientID, members).Error(0)
}

// --- Mock DossierRepository ---
type MockDossierRepository struct {
	mockTxManager
}

var _ portsrepo.DossierRepositoryWithTx = (*MockDossierRepository)(nil)

func (m *MockDossierRepository) FindDossierByID(ctx context.Context, dossierID string) (*domain.Dossier, error) {
	args := m.Called(ctx, dossierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierRepository) ListDossiers(ctx context.Context, clientID string) ([]domain.Dossier, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dossier), args.Error(1)
}

func (m *MockDossierRepository) SaveDossier(ctx context.Context, dossier domain.Dossier) error {
	return m.Called(ctx, dossier).Error(0)
}

func (m *MockDossierRepository) UpdateDossier(ctx context.Context, dossier domain.Dossier) error {
	return m.Called(ctx, dossier).Error(0)
}

func (m *MockDossierRepository) DeleteDossier(ctx context.Context, dossierID string) error {
	return m.Called(ctx, dossierID).Error(0)
}

func (m *MockDossierRepository) SaveDossierInTx(ctx context.Context, tx pgx.Tx, dossier domain.Dossier) error {
	return m.Called(ctx, tx, dossier).Error(0)
}

// --- Mock ServiceItemRepository ---
type MockServiceItemRepository struct {
	mockTxManager
}

var _ portsrepo.ServiceItemRepositoryWithTx = (*MockServiceItemRepository)(nil)

func (m *MockServiceItemRepository) FindServiceItemByID(ctx context.Context, serviceItemID string) (*domain.ServiceItem, error) {
	args := m.Called(ctx, serviceItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceItem), args.Error(1)
}

func (m *MockServiceItemRepository) ListServiceItemsByDossier(ctx context.Context, dossierID string) ([]domain.ServiceItem, error) {
	args := m.Called(ctx, dossierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceItem), args.Error(1)
}

func (m *MockServiceItemRepository) ListServiceItemsByClient(ctx context.Context, clientID string) ([]domain.ServiceItem, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceItem), args.Error(1)
}

func (m *MockServiceItemRepository) FindLastUnitPrices(ctx context.Context, serviceTypes []domain.ServiceType) (map[domain.ServiceType]decimal.Decimal, error) {
	args := m.Called(ctx, serviceTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.ServiceType]decimal.Decimal), args.Error(1)
}

func (m *MockServiceItemRepository) SaveServiceItem(ctx context.Context, item domain.ServiceItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockServiceItemRepository) UpdateServiceItem(ctx context.Context, item domain.ServiceItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockServiceItemRepository) DeleteServiceItem(ctx context.Context, serviceItemID string) error {
	return m.Called(ctx, serviceItemID).Error(0)
}

func (m *MockServiceItemRepository) SaveServiceItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.ServiceItem) error {
	return m.Called(ctx, tx, items).Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mockTxManager
}

var _ portsrepo.PaymentRepositoryWithTx = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.PaymentInstallment, error) {
	args := m.Called(ctx, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentInstallment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	return m.Called(ctx, paymentID).Error(0)
}

func (m *MockPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	return m.Called(ctx, tx, payment).Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	return m.Called(ctx, tx, payment).Error(0)
}

func (m *MockPaymentRepository) ReplaceInstallmentsInTx(ctx context.Context, tx pgx.Tx, paymentID string, installments []domain.PaymentInstallment) error {
	return m.Called(ctx, tx, paymentID, installments).Error(0)
}

func (m *MockPaymentRepository) MarkInstallmentPaidInTx(ctx context.Context, tx pgx.Tx, installmentID string, paidAt time.Time) error {
	return m.Called(ctx, tx, installmentID, paidAt).Error(0)
}

// --- Mock CaisseRepository ---
type MockCaisseRepository struct {
	mockTxManager
}

var _ portsrepo.CaisseRepositoryWithTx = (*MockCaisseRepository)(nil)

func (m *MockCaisseRepository) FindCaisseByID(ctx context.Context, caisseID string) (*domain.Caisse, error) {
	args := m.Called(ctx, caisseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Caisse), args.Error(1)
}

func (m *MockCaisseRepository) ListActiveCaisses(ctx context.Context) ([]domain.Caisse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Caisse), args.Error(1)
}

func (m *MockCaisseRepository) SaveCaisse(ctx context.Context, caisse domain.Caisse) error {
	return m.Called(ctx, caisse).Error(0)
}

func (m *MockCaisseRepository) FindCaisseByIDForUpdate(ctx context.Context, tx pgx.Tx, caisseID string) (*domain.Caisse, error) {
	args := m.Called(ctx, tx, caisseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Caisse), args.Error(1)
}

func (m *MockCaisseRepository) UpdateCaisseBalanceInTx(ctx context.Context, tx pgx.Tx, caisseID string, balance decimal.Decimal, userID string, now time.Time) error {
	return m.Called(ctx, tx, caisseID, balance, userID, now).Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ListRecentTransactions(ctx context.Context, caisseID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, caisseID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ListCompletedTransactions(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

var _ portsrepo.ReportRepositoryFacade = (*MockReportRepository)(nil)

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.FinancialReport) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockReportRepository) ListReports(ctx context.Context) ([]domain.FinancialReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialReport), args.Error(1)
}

// --- Mock AttachmentRepository ---
type MockAttachmentRepository struct {
	mock.Mock
}

var _ portsrepo.AttachmentRepositoryFacade = (*MockAttachmentRepository)(nil)

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListAttachmentsByClient(ctx context.Context, clientID string) ([]domain.Attachment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	return m.Called(ctx, attachment).Error(0)
}

func (m *MockAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	return m.Called(ctx, attachmentID).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// --- Mock BlobStore ---
type MockBlobStore struct {
	mock.Mock
}

var _ portssvc.BlobStore = (*MockBlobStore)(nil)

func (m *MockBlobStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, r, size, contentType).Error(0)
}

func (m *MockBlobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// fixedNow is the instant every service under test sees as now.
var fixedNow = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
