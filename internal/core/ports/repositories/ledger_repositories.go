package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerReader defines read operations for caisse transactions
type LedgerReader interface {
	// ListTransactions returns transactions matching filter with caisse and payment→client summaries, newest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListRecentTransactions returns the latest limit transactions of a caisse, newest first.
	ListRecentTransactions(ctx context.Context, caisseID string, limit int) ([]domain.Transaction, error)

	// ListCompletedTransactions returns COMPLETED transactions whose date is within [start, end].
	ListCompletedTransactions(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
}

// LedgerTransactionSupport defines ledger writes inside a caller-owned transaction
type LedgerTransactionSupport interface {
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerTransactionSupport
}
