package services

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/shopspring/decimal"
)

// DossierSvcFacade defines dossier CRUD
type DossierSvcFacade interface {
	CreateDossier(ctx context.Context, req dto.CreateDossierRequest, userID string) (*domain.Dossier, error)
	GetDossier(ctx context.Context, dossierID string) (*domain.Dossier, error)

	// ListDossiers lists every dossier, or only those of clientID when it is not empty.
	ListDossiers(ctx context.Context, clientID string) ([]domain.Dossier, error)
	UpdateDossier(ctx context.Context, dossierID string, req dto.UpdateDossierRequest, userID string) (*domain.Dossier, error)
	DeleteDossier(ctx context.Context, dossierID string) error
}

// ServiceItemReaderSvc defines read operations for service items
type ServiceItemReaderSvc interface {
	ListDossierServices(ctx context.Context, dossierID string) ([]domain.ServiceItem, error)
	ListClientServices(ctx context.Context, clientID string) ([]domain.ServiceItem, error)

	// GetClientServicesTotal returns the number of items and the sum of their line totals.
	GetClientServicesTotal(ctx context.Context, clientID string) (int, decimal.Decimal, error)

	// GetLastPrice returns nil when no item of serviceType was ever recorded.
	GetLastPrice(ctx context.Context, serviceType domain.ServiceType) (*decimal.Decimal, error)
	GetLastPrices(ctx context.Context, serviceTypes []domain.ServiceType) (map[domain.ServiceType]decimal.Decimal, error)
}

// ServiceItemWriterSvc defines write operations for service items
type ServiceItemWriterSvc interface {
	CreateService(ctx context.Context, dossierID string, req dto.ServiceItemInput, userID string) (*domain.ServiceItem, error)

	// CreateManyServices inserts a non-empty list atomically.
	CreateManyServices(ctx context.Context, dossierID string, req dto.CreateServiceItemsRequest, userID string) ([]domain.ServiceItem, error)
	UpdateService(ctx context.Context, serviceItemID string, req dto.UpdateServiceItemRequest, userID string) (*domain.ServiceItem, error)
	DeleteService(ctx context.Context, serviceItemID string) error
}

// ServiceItemSvcFacade combines all service item interfaces
type ServiceItemSvcFacade interface {
	ServiceItemReaderSvc
	ServiceItemWriterSvc
}
