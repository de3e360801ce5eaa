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
)

type phoneCallService struct {
	BaseService
	clientRepo      portsrepo.ClientRepositoryWithTx
	dossierRepo     portsrepo.DossierRepositoryWithTx
	serviceItemRepo portsrepo.ServiceItemRepositoryFacade
	paymentRepo     portsrepo.PaymentRepositoryFacade
}

// NewPhoneCallService creates the compound onboarding service. All writes share one
// transaction started on clientRepo.
func NewPhoneCallService(
	clientRepo portsrepo.ClientRepositoryWithTx,
	dossierRepo portsrepo.DossierRepositoryWithTx,
	serviceItemRepo portsrepo.ServiceItemRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	opts ...ServiceOption,
) portssvc.PhoneCallSvc {
	svc := &phoneCallService{
		clientRepo:      clientRepo,
		dossierRepo:     dossierRepo,
		serviceItemRepo: serviceItemRepo,
		paymentRepo:     paymentRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.PhoneCallSvc = (*phoneCallService)(nil)

func (s *phoneCallService) CreatePhoneCallClient(ctx context.Context, req dto.CreatePhoneCallClientRequest, userID string) (*domain.Client, error) {
	now := s.Now()

	if req.ClientType != domain.ClientPhoneCall {
		err := apperrors.Validationf("clientType must be %s", domain.ClientPhoneCall)
		s.LogError(ctx, err, "Phone-call onboarding rejected", slog.String("client_type", string(req.ClientType)))
		return nil, err
	}

	client := newClient(req.CreateClientRequest, userID, now)
	client.FamilyMembers = []domain.FamilyMember{}
	if err := validateClientRules(client); err != nil {
		s.LogError(ctx, err, "Phone-call onboarding rejected")
		return nil, err
	}

	dossier := newInitialDossier(client, userID, now)
	items := make([]domain.ServiceItem, len(req.Services))
	for i, in := range req.Services {
		items[i] = newServiceItem(dossier.DossierID, in, userID, now)
	}

	payment, err := s.buildPayment(req.PaymentConfig, client.ClientID, dossier.DossierID, items, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Phone-call payment configuration rejected", slog.String("client_id", client.ClientID))
		return nil, err
	}

	err = s.withTx(ctx, s.clientRepo, func(tx pgx.Tx) error {
		if err := s.clientRepo.SaveClientInTx(ctx, tx, client); err != nil {
			return err
		}
		if err := s.dossierRepo.SaveDossierInTx(ctx, tx, dossier); err != nil {
			return err
		}
		if err := s.serviceItemRepo.SaveServiceItemsInTx(ctx, tx, items); err != nil {
			return err
		}
		return s.paymentRepo.SavePaymentInTx(ctx, tx, payment)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to onboard phone-call client", slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Phone-call client onboarded",
		slog.String("client_id", client.ClientID),
		slog.String("dossier_id", dossier.DossierID),
		slog.String("payment_id", payment.PaymentID),
		slog.Int("services", len(items)))

	created, err := loadClientWithDossiers(ctx, s.clientRepo, s.dossierRepo, client.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload onboarded client", slog.String("client_id", client.ClientID))
		return nil, err
	}
	return created, nil
}

// buildPayment validates the wizard's payment configuration and turns it into a payment.
// Percentages must add up to exactly 100 here, unlike the payment manager which allows ±0.01.
func (s *phoneCallService) buildPayment(cfg dto.PaymentConfigInput, clientID, dossierID string, items []domain.ServiceItem, userID string, now time.Time) (domain.Payment, error) {
	installments, given := dto.ToDomainInstallments(cfg.Installments)
	if err := accounting.ValidatePercentageSumExact(installments); err != nil {
		return domain.Payment{}, apperrors.Validationf("%v", err)
	}

	if cfg.PaymentOption == domain.PaymentBankTransfer && strings.TrimSpace(cfg.TransferCode) == "" {
		today := domain.DateOnly(now)
		for _, inst := range installments {
			if domain.DateOnly(inst.DueDate) == today {
				return domain.Payment{}, apperrors.Validationf("transferCode is required for a bank transfer due today")
			}
		}
	}

	total := cfg.TotalAmount
	if total.IsZero() {
		total = accounting.SumLineTotals(items)
	}
	if !total.IsPositive() {
		return domain.Payment{}, apperrors.Validationf("paymentConfig.totalAmount must be greater than 0")
	}

	accounting.FillInstallmentAmounts(total, installments, given)
	if err := accounting.ValidateInstallmentAmounts(total, installments); err != nil {
		return domain.Payment{}, apperrors.Validationf("%v", err)
	}

	paymentID := uuid.NewString()
	for i := range installments {
		installments[i].InstallmentID = uuid.NewString()
		installments[i].PaymentID = paymentID
	}

	return domain.Payment{
		PaymentID:       paymentID,
		ClientID:        clientID,
		DossierID:       dossierID,
		TotalAmount:     total,
		PaymentOption:   cfg.PaymentOption,
		PaymentModality: cfg.PaymentModality,
		TransferCode:    strings.TrimSpace(cfg.TransferCode),
		Notes:           cfg.Notes,
		AuditFields:     domain.NewAuditFields(userID, now),
		Installments:    installments,
	}, nil
}
