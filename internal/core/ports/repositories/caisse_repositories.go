package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CaisseReader defines read operations for caisses
type CaisseReader interface {
	FindCaisseByID(ctx context.Context, caisseID string) (*domain.Caisse, error)

	// ListActiveCaisses returns active caisses, oldest first.
	ListActiveCaisses(ctx context.Context) ([]domain.Caisse, error)
}

// CaisseWriter defines write operations for caisses
type CaisseWriter interface {
	SaveCaisse(ctx context.Context, caisse domain.Caisse) error
}

// CaisseTransactionSupport defines balance operations that must run inside a transaction
type CaisseTransactionSupport interface {
	// FindCaisseByIDForUpdate selects the caisse row and locks it until tx ends.
	FindCaisseByIDForUpdate(ctx context.Context, tx pgx.Tx, caisseID string) (*domain.Caisse, error)

	// UpdateCaisseBalanceInTx writes the new balance of a locked caisse.
	UpdateCaisseBalanceInTx(ctx context.Context, tx pgx.Tx, caisseID string, balance decimal.Decimal, userID string, now time.Time) error
}

// CaisseRepositoryFacade combines all caisse-related repository interfaces
type CaisseRepositoryFacade interface {
	CaisseReader
	CaisseWriter
	CaisseTransactionSupport
}

// CaisseRepositoryWithTx extends CaisseRepositoryFacade with transaction capabilities
type CaisseRepositoryWithTx interface {
	CaisseRepositoryFacade
	TransactionManager
}
