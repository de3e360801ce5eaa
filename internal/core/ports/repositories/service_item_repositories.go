package repositories

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ServiceItemReader defines read operations for service items
type ServiceItemReader interface {
	FindServiceItemByID(ctx context.Context, serviceItemID string) (*domain.ServiceItem, error)

	// ListServiceItemsByDossier returns the items of one dossier, oldest first.
	ListServiceItemsByDossier(ctx context.Context, dossierID string) ([]domain.ServiceItem, error)

	// ListServiceItemsByClient flattens the items of every dossier of a client, newest first.
	ListServiceItemsByClient(ctx context.Context, clientID string) ([]domain.ServiceItem, error)

	// FindLastUnitPrices returns the unit price of the most recently created item per service type.
	// Types without any item are absent from the map.
	FindLastUnitPrices(ctx context.Context, serviceTypes []domain.ServiceType) (map[domain.ServiceType]decimal.Decimal, error)
}

// ServiceItemWriter defines write operations for service items
type ServiceItemWriter interface {
	SaveServiceItem(ctx context.Context, item domain.ServiceItem) error
	UpdateServiceItem(ctx context.Context, item domain.ServiceItem) error
	DeleteServiceItem(ctx context.Context, serviceItemID string) error
}

// ServiceItemTransactionSupport defines service item writes inside a caller-owned transaction
type ServiceItemTransactionSupport interface {
	// SaveServiceItemsInTx bulk-inserts items.
	SaveServiceItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.ServiceItem) error
}

// ServiceItemRepositoryFacade combines all service item repository interfaces
type ServiceItemRepositoryFacade interface {
	ServiceItemReader
	ServiceItemWriter
	ServiceItemTransactionSupport
}

// ServiceItemRepositoryWithTx extends ServiceItemRepositoryFacade with transaction capabilities
type ServiceItemRepositoryWithTx interface {
	ServiceItemRepositoryFacade
	TransactionManager
}
