package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dossier is a row of the dossiers table.
type Dossier struct {
	DossierID   string `db:"dossier_id"`
	ClientID    string `db:"client_id"`
	Reference   string `db:"reference"`
	VisaType    string `db:"visa_type"`
	Destination string `db:"destination"`
	Status      string `db:"status"`
	Notes       string `db:"notes"`
	AuditFields
}

// ServiceItem is a row of the service_items table.
type ServiceItem struct {
	ServiceItemID string          `db:"service_item_id"`
	DossierID     string          `db:"dossier_id"`
	ServiceType   string          `db:"service_type"`
	Description   string          `db:"description"`
	Quantity      int             `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	AuditFields
}

// Payment is a row of the payments table.
type Payment struct {
	PaymentID       string          `db:"payment_id"`
	ClientID        string          `db:"client_id"`
	DossierID       *string         `db:"dossier_id"` // Nullable
	TotalAmount     decimal.Decimal `db:"total_amount"`
	PaymentOption   string          `db:"payment_option"`
	PaymentModality string          `db:"payment_modality"`
	TransferCode    string          `db:"transfer_code"`
	Notes           string          `db:"notes"`
	AuditFields
}

// PaymentInstallment is a row of the payment_installments table.
type PaymentInstallment struct {
	InstallmentID string          `db:"installment_id"`
	PaymentID     string          `db:"payment_id"`
	Description   string          `db:"description"`
	Percentage    decimal.Decimal `db:"percentage"`
	Amount        decimal.Decimal `db:"amount"`
	DueDate       time.Time       `db:"due_date"`
	Status        string          `db:"status"`
	PaidAt        *time.Time      `db:"paid_at"`
}
