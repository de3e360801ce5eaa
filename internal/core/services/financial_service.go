package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// recentTransactionsLimit is how many transactions GetCaisseByID embeds.
const recentTransactionsLimit = 10

type financialService struct {
	BaseService
	caisseRepo portsrepo.CaisseRepositoryWithTx
	ledgerRepo portsrepo.LedgerRepositoryFacade
	reportRepo portsrepo.ReportRepositoryFacade
	taxRate    decimal.Decimal
}

// NewFinancialService creates the caisse, ledger and reporting service.
// taxRate is a fraction, e.g. 0.19.
func NewFinancialService(
	caisseRepo portsrepo.CaisseRepositoryWithTx,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	reportRepo portsrepo.ReportRepositoryFacade,
	taxRate decimal.Decimal,
	opts ...ServiceOption,
) portssvc.FinancialSvcFacade {
	svc := &financialService{
		caisseRepo: caisseRepo,
		ledgerRepo: ledgerRepo,
		reportRepo: reportRepo,
		taxRate:    taxRate,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.FinancialSvcFacade = (*financialService)(nil)

func (s *financialService) CreateCaisse(ctx context.Context, req dto.CreateCaisseRequest, userID string) (*domain.Caisse, error) {
	caisse := domain.Caisse{
		CaisseID:    uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Balance:     req.Balance,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.caisseRepo.SaveCaisse(ctx, caisse); err != nil {
		s.LogError(ctx, err, "Failed to save caisse", slog.String("name", caisse.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Caisse created", slog.String("caisse_id", caisse.CaisseID), slog.String("type", string(caisse.Type)))
	return &caisse, nil
}

func (s *financialService) GetAllCaisses(ctx context.Context) ([]domain.Caisse, error) {
	caisses, err := s.caisseRepo.ListActiveCaisses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list caisses")
		return nil, err
	}
	return caisses, nil
}

func (s *financialService) GetCaisseByID(ctx context.Context, caisseID string) (*domain.Caisse, error) {
	caisse, err := s.caisseRepo.FindCaisseByID(ctx, caisseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get caisse", slog.String("caisse_id", caisseID))
		return nil, err
	}
	recent, err := s.ledgerRepo.ListRecentTransactions(ctx, caisseID, recentTransactionsLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to load recent transactions", slog.String("caisse_id", caisseID))
		return nil, err
	}
	caisse.RecentTransactions = recent
	return caisse, nil
}

// applyBalanceDelta locks the caisse row and writes balance+delta within tx.
func applyBalanceDelta(ctx context.Context, repo portsrepo.CaisseTransactionSupport, tx pgx.Tx, caisseID string, delta decimal.Decimal, userID string, now time.Time) (*domain.Caisse, error) {
	caisse, err := repo.FindCaisseByIDForUpdate(ctx, tx, caisseID)
	if err != nil {
		return nil, err
	}
	if delta.IsZero() {
		return caisse, nil
	}
	caisse.Balance = caisse.Balance.Add(delta)
	caisse.Touch(userID, now)
	if err := repo.UpdateCaisseBalanceInTx(ctx, tx, caisseID, caisse.Balance, userID, now); err != nil {
		return nil, err
	}
	return caisse, nil
}

func (s *financialService) UpdateCaisseBalance(ctx context.Context, caisseID string, amount decimal.Decimal, txType domain.TransactionType, userID string) (*domain.Caisse, error) {
	var updated *domain.Caisse
	err := s.withTx(ctx, s.caisseRepo, func(tx pgx.Tx) error {
		c, err := applyBalanceDelta(ctx, s.caisseRepo, tx, caisseID, domain.BalanceDelta(txType, amount), userID, s.Now())
		if err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update caisse balance", slog.String("caisse_id", caisseID))
		return nil, err
	}
	return updated, nil
}

func (s *financialService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	now := s.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		CaisseID:        req.CaisseID,
		PaymentID:       req.PaymentID,
		Type:            req.Type,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		Status:          req.Status,
		TransactionDate: now,
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	if txn.Status == "" {
		txn.Status = domain.TransactionCompleted
	}
	if req.TransactionDate != nil && !req.TransactionDate.IsZero() {
		txn.TransactionDate = req.TransactionDate.Time
	}

	// The row and the balance change commit together or not at all.
	err := s.withTx(ctx, s.caisseRepo, func(tx pgx.Tx) error {
		if err := s.ledgerRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}
		_, err := applyBalanceDelta(ctx, s.caisseRepo, tx, txn.CaisseID, txn.SignedAmount(), userID, now)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction", slog.String("caisse_id", req.CaisseID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("caisse_id", txn.CaisseID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *financialService) GetTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.ledgerRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	return txns, nil
}

func (s *financialService) GenerateFinancialReport(ctx context.Context, start, end time.Time, userID string) (*domain.FinancialReport, error) {
	if end.Before(start) {
		return nil, apperrors.Validationf("endDate must not be before startDate")
	}

	txns, err := s.ledgerRepo.ListCompletedTransactions(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for report")
		return nil, err
	}
	caisses, err := s.caisseRepo.ListActiveCaisses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load caisses for report")
		return nil, err
	}

	totals := accounting.SumTransactions(txns)
	tax := accounting.TaxFor(totals.Income, s.taxRate)
	snapshots := make(map[string]domain.CaisseSnapshot, len(caisses))
	for _, c := range caisses {
		snapshots[c.CaisseID] = domain.CaisseSnapshot{Name: c.Name, Type: c.Type, Balance: c.Balance}
	}

	report := domain.FinancialReport{
		ReportID:       uuid.NewString(),
		StartDate:      start,
		EndDate:        end,
		TotalIncome:    totals.Income,
		TotalExpenses:  totals.Expenses,
		TotalTax:       tax,
		NetProfit:      totals.Income.Sub(totals.Expenses).Sub(tax),
		CaisseBalances: snapshots,
		GeneratedBy:    userID,
		CreatedAt:      s.Now(),
	}
	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save financial report")
		return nil, err
	}

	s.LogInfo(ctx, "Financial report generated",
		slog.String("report_id", report.ReportID),
		slog.Int("transactions", len(txns)))
	return &report, nil
}

func (s *financialService) ListFinancialReports(ctx context.Context) ([]domain.FinancialReport, error) {
	reports, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list financial reports")
		return nil, err
	}
	return reports, nil
}

func (s *financialService) TaxRate() decimal.Decimal {
	return s.taxRate
}

func (s *financialService) CalculateTaxForClient(total decimal.Decimal) decimal.Decimal {
	return accounting.TaxFor(total, s.taxRate)
}

func (s *financialService) CalculateProfitForClient(total, expenses decimal.Decimal) decimal.Decimal {
	return accounting.ProfitFor(total, expenses, s.taxRate)
}
