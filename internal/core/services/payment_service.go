package services

import (
	"context"
	"errors"
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
	"github.com/shopspring/decimal"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryWithTx
	clientRepo  portsrepo.ClientReader
	dossierRepo portsrepo.DossierReader
	caisseRepo  portsrepo.CaisseTransactionSupport
	ledgerRepo  portsrepo.LedgerTransactionSupport
}

// NewPaymentService creates the payment and installment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryWithTx,
	clientRepo portsrepo.ClientReader,
	dossierRepo portsrepo.DossierReader,
	caisseRepo portsrepo.CaisseTransactionSupport,
	ledgerRepo portsrepo.LedgerTransactionSupport,
	opts ...ServiceOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		dossierRepo: dossierRepo,
		caisseRepo:  caisseRepo,
		ledgerRepo:  ledgerRepo,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// validateInstallments applies the tolerant percentage and amount rules of the payment manager.
// Amounts that were not given are derived from the percentage first.
func validateInstallments(total decimal.Decimal, installments []domain.PaymentInstallment, given []bool) error {
	if len(installments) == 0 {
		return apperrors.Validationf("at least one installment is required")
	}
	if err := accounting.ValidatePercentageSum(installments); err != nil {
		return apperrors.Validationf("%v", err)
	}
	accounting.FillInstallmentAmounts(total, installments, given)
	if err := accounting.ValidateInstallmentAmounts(total, installments); err != nil {
		return apperrors.Validationf("%v", err)
	}
	return nil
}

func assignInstallmentIDs(paymentID string, installments []domain.PaymentInstallment) {
	for i := range installments {
		installments[i].InstallmentID = uuid.NewString()
		installments[i].PaymentID = paymentID
	}
}

func (s *paymentService) GetClientPayments(ctx context.Context, clientID string) ([]domain.Payment, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("client_id", clientID))
		return nil, err
	}
	return payments, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, clientID string, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to find client for payment", slog.String("client_id", clientID))
		return nil, err
	}
	if req.DossierID != "" {
		dossier, err := s.dossierRepo.FindDossierByID(ctx, req.DossierID)
		if err != nil {
			s.LogError(ctx, err, "Failed to find dossier for payment", slog.String("dossier_id", req.DossierID))
			return nil, err
		}
		if dossier.ClientID != clientID {
			err := apperrors.Validationf("dossier %s does not belong to client %s", req.DossierID, clientID)
			s.LogError(ctx, err, "Payment rejected")
			return nil, err
		}
	}

	installments, given := dto.ToDomainInstallments(req.Installments)
	if err := validateInstallments(req.TotalAmount, installments, given); err != nil {
		s.LogError(ctx, err, "Payment rejected", slog.String("client_id", clientID))
		return nil, err
	}

	payment := domain.Payment{
		PaymentID:       uuid.NewString(),
		ClientID:        clientID,
		DossierID:       req.DossierID,
		TotalAmount:     req.TotalAmount,
		PaymentOption:   req.PaymentOption,
		PaymentModality: req.PaymentModality,
		TransferCode:    strings.TrimSpace(req.TransferCode),
		Notes:           req.Notes,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
		Installments:    installments,
	}
	assignInstallmentIDs(payment.PaymentID, payment.Installments)

	err := s.withTx(ctx, s.paymentRepo, func(tx pgx.Tx) error {
		return s.paymentRepo.SavePaymentInTx(ctx, tx, payment)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("client_id", clientID),
		slog.Int("installments", len(payment.Installments)))
	return s.reload(ctx, payment.PaymentID)
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find payment for update", slog.String("payment_id", paymentID))
		return nil, err
	}

	if req.TotalAmount != nil {
		payment.TotalAmount = *req.TotalAmount
	}
	if req.PaymentOption != nil {
		payment.PaymentOption = *req.PaymentOption
	}
	if req.PaymentModality != nil {
		payment.PaymentModality = *req.PaymentModality
	}
	if req.TransferCode != nil {
		payment.TransferCode = strings.TrimSpace(*req.TransferCode)
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}

	var installments []domain.PaymentInstallment
	if req.Installments != nil {
		var given []bool
		installments, given = dto.ToDomainInstallments(*req.Installments)
		if err := validateInstallments(payment.TotalAmount, installments, given); err != nil {
			s.LogError(ctx, err, "Payment update rejected", slog.String("payment_id", paymentID))
			return nil, err
		}
		assignInstallmentIDs(paymentID, installments)
	}
	payment.Touch(userID, s.Now())

	err = s.withTx(ctx, s.paymentRepo, func(tx pgx.Tx) error {
		if err := s.paymentRepo.UpdatePaymentInTx(ctx, tx, *payment); err != nil {
			return err
		}
		if installments != nil {
			return s.paymentRepo.ReplaceInstallmentsInTx(ctx, tx, paymentID, installments)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment updated", slog.String("payment_id", paymentID), slog.Bool("installments_replaced", installments != nil))
	return s.reload(ctx, paymentID)
}

// reload re-reads a payment after a write so installments come back ordered by due date.
func (s *paymentService) reload(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			err = apperrors.NotFoundf("payment %s disappeared after write", paymentID)
		}
		s.LogError(ctx, err, "Failed to reload payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if _, err := s.paymentRepo.FindPaymentByID(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to find payment", slog.String("payment_id", paymentID))
		return err
	}
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}

func (s *paymentService) MarkInstallmentPaid(ctx context.Context, installmentID string, req dto.MarkInstallmentPaidRequest, userID string) (*domain.Payment, error) {
	inst, err := s.paymentRepo.FindInstallmentByID(ctx, installmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find installment", slog.String("installment_id", installmentID))
		return nil, err
	}
	if inst.Status != domain.InstallmentPending {
		err := apperrors.Validationf("installment %s is already %s", installmentID, inst.Status)
		s.LogError(ctx, err, "Installment payment rejected")
		return nil, err
	}

	now := s.Now()
	caisseID := strings.TrimSpace(req.CaisseID)
	err = s.withTx(ctx, s.paymentRepo, func(tx pgx.Tx) error {
		if err := s.paymentRepo.MarkInstallmentPaidInTx(ctx, tx, installmentID, now); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Validationf("installment %s is no longer pending", installmentID)
			}
			return err
		}
		if caisseID == "" {
			return nil
		}
		return s.creditCaisse(ctx, tx, caisseID, *inst, userID, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to mark installment paid", slog.String("installment_id", installmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Installment paid",
		slog.String("installment_id", installmentID),
		slog.String("payment_id", inst.PaymentID),
		slog.String("caisse_id", caisseID))
	return s.reload(ctx, inst.PaymentID)
}

// creditCaisse records the installment as COMPLETED income on caisseID and raises its balance.
func (s *paymentService) creditCaisse(ctx context.Context, tx pgx.Tx, caisseID string, inst domain.PaymentInstallment, userID string, now time.Time) error {
	if !inst.Amount.IsPositive() {
		return nil
	}
	description := "Installment payment"
	if inst.Description != "" {
		description += ": " + inst.Description
	}
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		CaisseID:        caisseID,
		PaymentID:       inst.PaymentID,
		Type:            domain.Income,
		Amount:          inst.Amount,
		Description:     description,
		Status:          domain.TransactionCompleted,
		TransactionDate: now,
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	if _, err := applyBalanceDelta(ctx, s.caisseRepo, tx, caisseID, txn.SignedAmount(), userID, now); err != nil {
		return err
	}
	return s.ledgerRepo.SaveTransactionInTx(ctx, tx, txn)
}
