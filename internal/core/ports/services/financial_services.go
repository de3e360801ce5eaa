package services

import (
	"context"
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CaisseSvc manages cash registers and their balances
type CaisseSvc interface {
	CreateCaisse(ctx context.Context, req dto.CreateCaisseRequest, userID string) (*domain.Caisse, error)

	// GetAllCaisses returns active caisses, oldest first.
	GetAllCaisses(ctx context.Context) ([]domain.Caisse, error)

	// GetCaisseByID returns the caisse with its most recent transactions.
	GetCaisseByID(ctx context.Context, caisseID string) (*domain.Caisse, error)

	// UpdateCaisseBalance applies amount to the balance under a row lock.
	UpdateCaisseBalance(ctx context.Context, caisseID string, amount decimal.Decimal, txType domain.TransactionType, userID string) (*domain.Caisse, error)
}

// LedgerSvc records and lists caisse transactions
type LedgerSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// ReportingSvc produces financial reports and tax figures
type ReportingSvc interface {
	GenerateFinancialReport(ctx context.Context, start, end time.Time, userID string) (*domain.FinancialReport, error)
	ListFinancialReports(ctx context.Context) ([]domain.FinancialReport, error)

	TaxRate() decimal.Decimal
	CalculateTaxForClient(total decimal.Decimal) decimal.Decimal
	CalculateProfitForClient(total, expenses decimal.Decimal) decimal.Decimal
}

// FinancialSvcFacade combines all financial service interfaces
type FinancialSvcFacade interface {
	CaisseSvc
	LedgerSvc
	ReportingSvc
}
