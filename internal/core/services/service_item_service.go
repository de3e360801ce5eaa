package services

import (
	"context"
	"log/slog"
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

type serviceItemService struct {
	BaseService
	serviceItemRepo portsrepo.ServiceItemRepositoryWithTx
	dossierRepo     portsrepo.DossierReader
	clientRepo      portsrepo.ClientReader
}

// NewServiceItemService creates the service item service.
func NewServiceItemService(
	serviceItemRepo portsrepo.ServiceItemRepositoryWithTx,
	dossierRepo portsrepo.DossierReader,
	clientRepo portsrepo.ClientReader,
	opts ...ServiceOption,
) portssvc.ServiceItemSvcFacade {
	svc := &serviceItemService{
		serviceItemRepo: serviceItemRepo,
		dossierRepo:     dossierRepo,
		clientRepo:      clientRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.ServiceItemSvcFacade = (*serviceItemService)(nil)

func newServiceItem(dossierID string, in dto.ServiceItemInput, userID string, now time.Time) domain.ServiceItem {
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return domain.ServiceItem{
		ServiceItemID: uuid.NewString(),
		DossierID:     dossierID,
		ServiceType:   in.ServiceType,
		Description:   in.Description,
		Quantity:      quantity,
		UnitPrice:     in.UnitPrice,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
}

func (s *serviceItemService) ListDossierServices(ctx context.Context, dossierID string) ([]domain.ServiceItem, error) {
	if _, err := s.dossierRepo.FindDossierByID(ctx, dossierID); err != nil {
		s.LogError(ctx, err, "Failed to find dossier", slog.String("dossier_id", dossierID))
		return nil, err
	}
	items, err := s.serviceItemRepo.ListServiceItemsByDossier(ctx, dossierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list dossier services", slog.String("dossier_id", dossierID))
		return nil, err
	}
	return items, nil
}

func (s *serviceItemService) ListClientServices(ctx context.Context, clientID string) ([]domain.ServiceItem, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, err
	}
	items, err := s.serviceItemRepo.ListServiceItemsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client services", slog.String("client_id", clientID))
		return nil, err
	}
	return items, nil
}

func (s *serviceItemService) GetClientServicesTotal(ctx context.Context, clientID string) (int, decimal.Decimal, error) {
	items, err := s.ListClientServices(ctx, clientID)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return len(items), accounting.SumLineTotals(items), nil
}

func (s *serviceItemService) GetLastPrice(ctx context.Context, serviceType domain.ServiceType) (*decimal.Decimal, error) {
	prices, err := s.GetLastPrices(ctx, []domain.ServiceType{serviceType})
	if err != nil {
		return nil, err
	}
	price, ok := prices[serviceType]
	if !ok {
		return nil, nil
	}
	return &price, nil
}

func (s *serviceItemService) GetLastPrices(ctx context.Context, serviceTypes []domain.ServiceType) (map[domain.ServiceType]decimal.Decimal, error) {
	if len(serviceTypes) == 0 {
		return map[domain.ServiceType]decimal.Decimal{}, nil
	}
	prices, err := s.serviceItemRepo.FindLastUnitPrices(ctx, serviceTypes)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up last unit prices")
		return nil, err
	}
	return prices, nil
}

func (s *serviceItemService) CreateService(ctx context.Context, dossierID string, req dto.ServiceItemInput, userID string) (*domain.ServiceItem, error) {
	if _, err := s.dossierRepo.FindDossierByID(ctx, dossierID); err != nil {
		s.LogError(ctx, err, "Failed to find dossier", slog.String("dossier_id", dossierID))
		return nil, err
	}

	item := newServiceItem(dossierID, req, userID, s.Now())
	if err := s.serviceItemRepo.SaveServiceItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save service item", slog.String("dossier_id", dossierID))
		return nil, err
	}
	return &item, nil
}

func (s *serviceItemService) CreateManyServices(ctx context.Context, dossierID string, req dto.CreateServiceItemsRequest, userID string) ([]domain.ServiceItem, error) {
	if len(req.Items) == 0 {
		err := apperrors.Validationf("items must contain at least one service")
		s.LogError(ctx, err, "Batch service creation rejected", slog.String("dossier_id", dossierID))
		return nil, err
	}
	if _, err := s.dossierRepo.FindDossierByID(ctx, dossierID); err != nil {
		s.LogError(ctx, err, "Failed to find dossier", slog.String("dossier_id", dossierID))
		return nil, err
	}

	now := s.Now()
	items := make([]domain.ServiceItem, len(req.Items))
	for i, in := range req.Items {
		items[i] = newServiceItem(dossierID, in, userID, now)
	}

	err := s.withTx(ctx, s.serviceItemRepo, func(tx pgx.Tx) error {
		return s.serviceItemRepo.SaveServiceItemsInTx(ctx, tx, items)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save service items", slog.String("dossier_id", dossierID))
		return nil, err
	}
	s.LogInfo(ctx, "Service items created", slog.String("dossier_id", dossierID), slog.Int("count", len(items)))
	return items, nil
}

func (s *serviceItemService) UpdateService(ctx context.Context, serviceItemID string, req dto.UpdateServiceItemRequest, userID string) (*domain.ServiceItem, error) {
	item, err := s.serviceItemRepo.FindServiceItemByID(ctx, serviceItemID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find service item", slog.String("service_item_id", serviceItemID))
		return nil, err
	}

	if req.ServiceType != nil {
		item.ServiceType = *req.ServiceType
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	item.Touch(userID, s.Now())

	if err := s.serviceItemRepo.UpdateServiceItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update service item", slog.String("service_item_id", serviceItemID))
		return nil, err
	}
	return item, nil
}

func (s *serviceItemService) DeleteService(ctx context.Context, serviceItemID string) error {
	if _, err := s.serviceItemRepo.FindServiceItemByID(ctx, serviceItemID); err != nil {
		s.LogError(ctx, err, "Failed to find service item", slog.String("service_item_id", serviceItemID))
		return err
	}
	if err := s.serviceItemRepo.DeleteServiceItem(ctx, serviceItemID); err != nil {
		s.LogError(ctx, err, "Failed to delete service item", slog.String("service_item_id", serviceItemID))
		return err
	}
	return nil
}
