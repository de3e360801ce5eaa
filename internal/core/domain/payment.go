package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOption is the means used to settle a payment.
type PaymentOption string

const (
	PaymentCash         PaymentOption = "CASH"
	PaymentBankTransfer PaymentOption = "BANK_TRANSFER"
	PaymentCheck        PaymentOption = "CHECK"
	PaymentCard         PaymentOption = "CARD"
)

// PaymentModality says whether the total is settled at once or split.
type PaymentModality string

const (
	ModalityFull         PaymentModality = "FULL"
	ModalityInstallments PaymentModality = "INSTALLMENTS"
)

// InstallmentStatus tracks whether a slice of a payment has been received.
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "PENDING"
	InstallmentPaid    InstallmentStatus = "PAID"
)

// Payment is an amount owed by a client, optionally tied to a dossier, split into installments.
type Payment struct {
	PaymentID       string          `json:"paymentID"`
	ClientID        string          `json:"clientID"`
	DossierID       string          `json:"dossierID"` // empty when not tied to a dossier
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentOption   PaymentOption   `json:"paymentOption"`
	PaymentModality PaymentModality `json:"paymentModality"`
	TransferCode    string          `json:"transferCode"`
	Notes           string          `json:"notes"`
	AuditFields

	Installments []PaymentInstallment `json:"installments"`
}

// PaymentInstallment is a percentage slice of a Payment.
type PaymentInstallment struct {
	InstallmentID string            `json:"installmentID"`
	PaymentID     string            `json:"paymentID"`
	Description   string            `json:"description"`
	Percentage    decimal.Decimal   `json:"percentage"`
	Amount        decimal.Decimal   `json:"amount"`
	DueDate       time.Time         `json:"dueDate"`
	Status        InstallmentStatus `json:"status"`
	PaidAt        *time.Time        `json:"paidAt,omitempty"`
}
