package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/google/uuid"
)

type dossierService struct {
	BaseService
	dossierRepo portsrepo.DossierRepositoryFacade
	clientRepo  portsrepo.ClientReader
}

// NewDossierService creates a new dossier service.
func NewDossierService(dossierRepo portsrepo.DossierRepositoryFacade, clientRepo portsrepo.ClientReader, opts ...ServiceOption) portssvc.DossierSvcFacade {
	svc := &dossierService{
		dossierRepo: dossierRepo,
		clientRepo:  clientRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.DossierSvcFacade = (*dossierService)(nil)

func (s *dossierService) CreateDossier(ctx context.Context, req dto.CreateDossierRequest, userID string) (*domain.Dossier, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		s.LogError(ctx, err, "Failed to find client for dossier", slog.String("client_id", req.ClientID))
		return nil, err
	}

	now := s.Now()
	dossier := domain.Dossier{
		DossierID:    uuid.NewString(),
		ClientID:     req.ClientID,
		Reference:    strings.TrimSpace(req.Reference),
		VisaType:     req.VisaType,
		Destination:  req.Destination,
		Status:       req.Status,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(userID, now),
		ServiceItems: []domain.ServiceItem{},
		Payments:     []domain.Payment{},
	}
	if dossier.Reference == "" {
		dossier.Reference = newDossierReference(now)
	}
	if dossier.Status == "" {
		dossier.Status = domain.DossierInProgress
	}

	if err := s.dossierRepo.SaveDossier(ctx, dossier); err != nil {
		s.LogError(ctx, err, "Failed to save dossier", slog.String("client_id", req.ClientID))
		return nil, err
	}
	s.LogInfo(ctx, "Dossier created", slog.String("dossier_id", dossier.DossierID), slog.String("client_id", dossier.ClientID))
	return &dossier, nil
}

func (s *dossierService) GetDossier(ctx context.Context, dossierID string) (*domain.Dossier, error) {
	dossier, err := s.dossierRepo.FindDossierByID(ctx, dossierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get dossier", slog.String("dossier_id", dossierID))
		return nil, err
	}
	return dossier, nil
}

func (s *dossierService) ListDossiers(ctx context.Context, clientID string) ([]domain.Dossier, error) {
	dossiers, err := s.dossierRepo.ListDossiers(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list dossiers", slog.String("client_id", clientID))
		return nil, err
	}
	return dossiers, nil
}

func (s *dossierService) UpdateDossier(ctx context.Context, dossierID string, req dto.UpdateDossierRequest, userID string) (*domain.Dossier, error) {
	dossier, err := s.GetDossier(ctx, dossierID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil {
		dossier.Reference = strings.TrimSpace(*req.Reference)
	}
	if req.VisaType != nil {
		dossier.VisaType = *req.VisaType
	}
	if req.Destination != nil {
		dossier.Destination = *req.Destination
	}
	if req.Status != nil {
		dossier.Status = *req.Status
	}
	if req.Notes != nil {
		dossier.Notes = *req.Notes
	}
	dossier.Touch(userID, s.Now())

	if err := s.dossierRepo.UpdateDossier(ctx, *dossier); err != nil {
		s.LogError(ctx, err, "Failed to update dossier", slog.String("dossier_id", dossierID))
		return nil, err
	}
	return dossier, nil
}

func (s *dossierService) DeleteDossier(ctx context.Context, dossierID string) error {
	if _, err := s.GetDossier(ctx, dossierID); err != nil {
		return err
	}
	if err := s.dossierRepo.DeleteDossier(ctx, dossierID); err != nil {
		s.LogError(ctx, err, "Failed to delete dossier", slog.String("dossier_id", dossierID))
		return err
	}
	s.LogInfo(ctx, "Dossier deleted", slog.String("dossier_id", dossierID))
	return nil
}
