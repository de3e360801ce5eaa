package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payments. Installments are ordered by due date.
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByClient returns the payments of a client, newest first.
	ListPaymentsByClient(ctx context.Context, clientID string) ([]domain.Payment, error)

	FindInstallmentByID(ctx context.Context, installmentID string) (*domain.PaymentInstallment, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentTransactionSupport defines payment writes inside a caller-owned transaction
type PaymentTransactionSupport interface {
	// SavePaymentInTx inserts the payment row and all its installments.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// UpdatePaymentInTx updates the scalar columns of a payment.
	UpdatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// ReplaceInstallmentsInTx deletes every installment of the payment then inserts installments.
	ReplaceInstallmentsInTx(ctx context.Context, tx pgx.Tx, paymentID string, installments []domain.PaymentInstallment) error

	// MarkInstallmentPaidInTx flips a PENDING installment to PAID.
	MarkInstallmentPaidInTx(ctx context.Context, tx pgx.Tx, installmentID string, paidAt time.Time) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	PaymentTransactionSupport
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
