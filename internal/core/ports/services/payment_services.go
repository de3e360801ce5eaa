package services

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	GetClientPayments(ctx context.Context, clientID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payments
type PaymentWriterSvc interface {
	CreatePayment(ctx context.Context, clientID string, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error

	// MarkInstallmentPaid settles a pending installment, crediting a caisse when one is named.
	MarkInstallmentPaid(ctx context.Context, installmentID string, req dto.MarkInstallmentPaidRequest, userID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
