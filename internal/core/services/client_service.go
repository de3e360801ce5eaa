package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clientService struct {
	BaseService
	clientRepo  portsrepo.ClientRepositoryWithTx
	dossierRepo portsrepo.DossierRepositoryWithTx
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryWithTx, dossierRepo portsrepo.DossierRepositoryWithTx, opts ...ServiceOption) portssvc.ClientSvcFacade {
	svc := &clientService{
		clientRepo:  clientRepo,
		dossierRepo: dossierRepo,
	}
	svc.apply(opts)
	return svc
}

// Ensure clientService implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// validateClientRules enforces the fields that become mandatory depending on client type and age.
func validateClientRules(c domain.Client) error {
	if c.ClientType.RequiresPassport() && strings.TrimSpace(c.PassportNumber) == "" {
		return apperrors.Validationf("passportNumber is required for %s clients", c.ClientType)
	}
	if c.ClientType.RequiresFamilyMembers() && len(c.FamilyMembers) == 0 {
		return apperrors.Validationf("at least one family member is required for %s clients", c.ClientType)
	}
	if c.IsMinor && (strings.TrimSpace(c.GuardianName) == "" || strings.TrimSpace(c.GuardianPhone) == "") {
		return apperrors.Validationf("guardianName and guardianPhone are required for a minor")
	}
	return nil
}

// newClient maps a create request onto a fresh client with ids assigned to every child.
func newClient(req dto.CreateClientRequest, userID string, now time.Time) domain.Client {
	clientID := uuid.NewString()
	status := req.Status
	if status == "" {
		status = domain.ClientStatusNew
	}
	return domain.Client{
		ClientID:         clientID,
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.TrimSpace(req.Email),
		Address:          req.Address,
		Nationality:      req.Nationality,
		DateOfBirth:      req.DateOfBirth.TimePtr(),
		PassportNumber:   strings.TrimSpace(req.PassportNumber),
		PassportExpiry:   req.PassportExpiry.TimePtr(),
		VisaType:         req.VisaType,
		Destination:      req.Destination,
		ClientType:       req.ClientType,
		Status:           status,
		IsMinor:          req.IsMinor,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
		GuardianRelation: req.GuardianRelation,
		Notes:            req.Notes,
		AuditFields:      domain.NewAuditFields(userID, now),
		PhoneNumbers:     toPhoneNumbers(clientID, req.PhoneNumbers),
		Employers:        toEmployers(clientID, req.Employers),
		FamilyMembers:    toFamilyMembers(clientID, req.FamilyMembers),
		Attachments:      []domain.Attachment{},
	}
}

func toPhoneNumbers(clientID string, in []dto.PhoneNumberInput) []domain.PhoneNumber {
	out := make([]domain.PhoneNumber, len(in))
	for i, p := range in {
		out[i] = domain.PhoneNumber{
			PhoneNumberID: uuid.NewString(),
			ClientID:      clientID,
			Number:        strings.TrimSpace(p.Number),
			Label:         p.Label,
		}
	}
	return out
}

func toEmployers(clientID string, in []dto.EmployerInput) []domain.Employer {
	out := make([]domain.Employer, len(in))
	for i, e := range in {
		out[i] = domain.Employer{
			EmployerID: uuid.NewString(),
			ClientID:   clientID,
			Name:       e.Name,
			Position:   e.Position,
			Phone:      e.Phone,
			Address:    e.Address,
		}
	}
	return out
}

func toFamilyMembers(clientID string, in []dto.FamilyMemberInput) []domain.FamilyMember {
	out := make([]domain.FamilyMember, len(in))
	for i, m := range in {
		out[i] = toFamilyMember(clientID, m)
	}
	return out
}

func toFamilyMember(clientID string, m dto.FamilyMemberInput) domain.FamilyMember {
	return domain.FamilyMember{
		FamilyMemberID: uuid.NewString(),
		ClientID:       clientID,
		FullName:       strings.TrimSpace(m.FullName),
		Relationship:   m.Relationship,
		PassportNumber: m.PassportNumber,
		DateOfBirth:    m.DateOfBirth.TimePtr(),
	}
}

// newInitialDossier is the EN_COURS dossier opened together with every new client.
func newInitialDossier(client domain.Client, userID string, now time.Time) domain.Dossier {
	return domain.Dossier{
		DossierID:    uuid.NewString(),
		ClientID:     client.ClientID,
		Reference:    newDossierReference(now),
		VisaType:     client.VisaType,
		Destination:  client.Destination,
		Status:       domain.DossierInProgress,
		AuditFields:  domain.NewAuditFields(userID, now),
		ServiceItems: []domain.ServiceItem{},
		Payments:     []domain.Payment{},
	}
}

// newDossierReference builds a human-friendly reference such as DOS-20250601-1A2B3C4D.
func newDossierReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("DOS-%s-%s", now.UTC().Format("20060102"), suffix)
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	client := newClient(req, userID, s.Now())
	if err := validateClientRules(client); err != nil {
		s.LogError(ctx, err, "Client rejected", slog.String("client_type", string(client.ClientType)))
		return nil, err
	}
	dossier := newInitialDossier(client, userID, client.CreatedAt)

	err := s.withTx(ctx, s.clientRepo, func(tx pgx.Tx) error {
		if err := s.clientRepo.SaveClientInTx(ctx, tx, client); err != nil {
			return err
		}
		return s.dossierRepo.SaveDossierInTx(ctx, tx, dossier)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create client", slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created",
		slog.String("client_id", client.ClientID),
		slog.String("dossier_id", dossier.DossierID),
		slog.String("user_id", userID))
	client.Dossiers = []domain.Dossier{dossier}
	return &client, nil
}

func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := loadClientWithDossiers(ctx, s.clientRepo, s.dossierRepo, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

// loadClientWithDossiers fetches a client with its children and its dossiers, newest first.
func loadClientWithDossiers(ctx context.Context, clientRepo portsrepo.ClientReader, dossierRepo portsrepo.DossierReader, clientID string) (*domain.Client, error) {
	client, err := clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	dossiers, err := dossierRepo.ListDossiers(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dossiers of client %s: %w", clientID, err)
	}
	client.Dossiers = dossiers
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, pagination.Meta, error) {
	page, limit, offset := pagination.Normalize(params.Page, params.Limit)
	filter := domain.ClientFilter{
		Status:     params.Status,
		ClientType: params.ClientType,
		Search:     strings.TrimSpace(params.Search),
		Limit:      limit,
		Offset:     offset,
	}

	clients, total, err := s.clientRepo.ListClients(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, pagination.Meta{}, err
	}
	return clients, pagination.NewMeta(page, limit, total), nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find client for update", slog.String("client_id", clientID))
		return nil, err
	}

	applyClientUpdate(client, req)
	if req.PhoneNumbers != nil {
		client.PhoneNumbers = toPhoneNumbers(clientID, *req.PhoneNumbers)
	}
	if req.Employers != nil {
		client.Employers = toEmployers(clientID, *req.Employers)
	}
	if req.FamilyMembers != nil {
		client.FamilyMembers = toFamilyMembers(clientID, *req.FamilyMembers)
	}
	if err := validateClientRules(*client); err != nil {
		s.LogError(ctx, err, "Client update rejected", slog.String("client_id", clientID))
		return nil, err
	}
	client.Touch(userID, s.Now())

	err = s.withTx(ctx, s.clientRepo, func(tx pgx.Tx) error {
		if err := s.clientRepo.UpdateClientInTx(ctx, tx, *client); err != nil {
			return err
		}
		if req.PhoneNumbers != nil {
			if err := s.clientRepo.ReplacePhoneNumbersInTx(ctx, tx, clientID, client.PhoneNumbers); err != nil {
				return err
			}
		}
		if req.Employers != nil {
			if err := s.clientRepo.ReplaceEmployersInTx(ctx, tx, clientID, client.Employers); err != nil {
				return err
			}
		}
		if req.FamilyMembers != nil {
			if err := s.clientRepo.ReplaceFamilyMembersInTx(ctx, tx, clientID, client.FamilyMembers); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID), slog.String("user_id", userID))
	return s.GetClient(ctx, clientID)
}

// applyClientUpdate patches the scalar fields present in req.
func applyClientUpdate(c *domain.Client, req dto.UpdateClientRequest) {
	if req.FullName != nil {
		c.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Nationality != nil {
		c.Nationality = *req.Nationality
	}
	if req.DateOfBirth != nil {
		c.DateOfBirth = req.DateOfBirth.TimePtr()
	}
	if req.PassportNumber != nil {
		c.PassportNumber = strings.TrimSpace(*req.PassportNumber)
	}
	if req.PassportExpiry != nil {
		c.PassportExpiry = req.PassportExpiry.TimePtr()
	}
	if req.VisaType != nil {
		c.VisaType = *req.VisaType
	}
	if req.Destination != nil {
		c.Destination = *req.Destination
	}
	if req.ClientType != nil {
		c.ClientType = *req.ClientType
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.IsMinor != nil {
		c.IsMinor = *req.IsMinor
	}
	if req.GuardianName != nil {
		c.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		c.GuardianPhone = *req.GuardianPhone
	}
	if req.GuardianRelation != nil {
		c.GuardianRelation = *req.GuardianRelation
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return err
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}

func (s *clientService) AddFamilyMember(ctx context.Context, clientID string, req dto.FamilyMemberInput) (*domain.FamilyMember, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to find client for family member", slog.String("client_id", clientID))
		return nil, err
	}

	member := toFamilyMember(clientID, req)
	if err := s.clientRepo.SaveFamilyMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save family member", slog.String("client_id", clientID))
		return nil, err
	}
	return &member, nil
}

func (s *clientService) RemoveFamilyMember(ctx context.Context, familyMemberID string) error {
	if err := s.clientRepo.DeleteFamilyMember(ctx, familyMemberID); err != nil {
		s.LogError(ctx, err, "Failed to delete family member", slog.String("family_member_id", familyMemberID))
		return err
	}
	return nil
}
