package repositories

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DossierReader defines read operations for dossier data.
// Dossiers are always returned with their service items and payments (with installments) loaded.
type DossierReader interface {
	FindDossierByID(ctx context.Context, dossierID string) (*domain.Dossier, error)

	// ListDossiers lists dossiers newest first, optionally restricted to one client.
	ListDossiers(ctx context.Context, clientID string) ([]domain.Dossier, error)
}

// DossierWriter defines write operations for dossier data
type DossierWriter interface {
	SaveDossier(ctx context.Context, dossier domain.Dossier) error
	UpdateDossier(ctx context.Context, dossier domain.Dossier) error
	DeleteDossier(ctx context.Context, dossierID string) error
}

// DossierTransactionSupport defines dossier writes that take part in a caller-owned transaction
type DossierTransactionSupport interface {
	SaveDossierInTx(ctx context.Context, tx pgx.Tx, dossier domain.Dossier) error
}

// DossierRepositoryFacade combines all dossier-related repository interfaces
type DossierRepositoryFacade interface {
	DossierReader
	DossierWriter
	DossierTransactionSupport
}

// DossierRepositoryWithTx extends DossierRepositoryFacade with transaction capabilities
type DossierRepositoryWithTx interface {
	DossierRepositoryFacade
	TransactionManager
}
