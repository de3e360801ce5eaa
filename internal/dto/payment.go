package dto

import (
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InstallmentInput is one installment supplied on payment create/update.
// Amount may be omitted, in which case it is derived from the percentage.
// An explicit amount, zero included, is checked against the percentage.
type InstallmentInput struct {
	Description string           `json:"description" validate:"max=200"`
	Percentage  decimal.Decimal  `json:"percentage"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     Date             `json:"dueDate" validate:"required"`
}

// Validate checks one installment.
func (r InstallmentInput) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if err := requirePercentage("percentage", r.Percentage); err != nil {
		return err
	}
	if r.Amount == nil {
		return nil
	}
	return requireNonNegative("amount", *r.Amount)
}

// ToDomainInstallments converts inputs into PENDING installments; due dates become midnight UTC.
// given[i] reports whether input i carried an amount.
func ToDomainInstallments(inputs []InstallmentInput) (installments []domain.PaymentInstallment, given []bool) {
	installments = make([]domain.PaymentInstallment, len(inputs))
	given = make([]bool, len(inputs))
	for i, in := range inputs {
		installments[i] = domain.PaymentInstallment{
			Description: in.Description,
			Percentage:  in.Percentage,
			Amount:      decimal.Zero,
			DueDate:     domain.StartOfDay(in.DueDate.Time),
			Status:      domain.InstallmentPending,
		}
		if in.Amount != nil {
			installments[i].Amount = *in.Amount
			given[i] = true
		}
	}
	return installments, given
}

func validateInstallments(inputs []InstallmentInput) error {
	for _, in := range inputs {
		if err := in.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CreatePaymentRequest defines the data needed to create a payment for a client.
type CreatePaymentRequest struct {
	DossierID       string                 `json:"dossierID" validate:"omitempty,uuid"`
	TotalAmount     decimal.Decimal        `json:"totalAmount"`
	PaymentOption   domain.PaymentOption   `json:"paymentOption" validate:"required,payment_option"`
	PaymentModality domain.PaymentModality `json:"paymentModality" validate:"required,payment_modality"`
	TransferCode    string                 `json:"transferCode" validate:"max=100"`
	Notes           string                 `json:"notes"`
	Installments    []InstallmentInput     `json:"installments" validate:"required,min=1"`
}

// Validate checks the request shape. Percentage and amount consistency is checked by the payment service.
func (r CreatePaymentRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if err := requirePositive("totalAmount", r.TotalAmount); err != nil {
		return err
	}
	return validateInstallments(r.Installments)
}

// UpdatePaymentRequest defines the data allowed for updating a payment.
// When Installments is non-nil the stored installments are replaced.
type UpdatePaymentRequest struct {
	TotalAmount     *decimal.Decimal        `json:"totalAmount"`
	PaymentOption   *domain.PaymentOption   `json:"paymentOption" validate:"omitempty,payment_option"`
	PaymentModality *domain.PaymentModality `json:"paymentModality" validate:"omitempty,payment_modality"`
	TransferCode    *string                 `json:"transferCode" validate:"omitempty,max=100"`
	Notes           *string                 `json:"notes"`
	Installments    *[]InstallmentInput     `json:"installments"`
}

// Validate checks the request shape.
func (r UpdatePaymentRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.TotalAmount != nil {
		if err := requirePositive("totalAmount", *r.TotalAmount); err != nil {
			return err
		}
	}
	if r.Installments != nil {
		return validateInstallments(*r.Installments)
	}
	return nil
}

// MarkInstallmentPaidRequest optionally names the caisse receiving the money.
type MarkInstallmentPaidRequest struct {
	CaisseID string `json:"caisseID" validate:"omitempty,uuid"`
}

// Validate checks the request. The caisse is optional.
func (r MarkInstallmentPaidRequest) Validate() error {
	return validateStruct(r)
}

// PaymentConfigInput is the payment part of the phone-call onboarding wizard.
type PaymentConfigInput struct {
	TotalAmount     decimal.Decimal        `json:"totalAmount"`
	PaymentOption   domain.PaymentOption   `json:"paymentOption" validate:"required,payment_option"`
	PaymentModality domain.PaymentModality `json:"paymentModality" validate:"required,payment_modality"`
	TransferCode    string                 `json:"transferCode" validate:"max=100"`
	Notes           string                 `json:"notes"`
	Installments    []InstallmentInput     `json:"installments" validate:"required,min=1"`
}

// CreatePhoneCallClientRequest is the body of the compound phone-call onboarding.
type CreatePhoneCallClientRequest struct {
	CreateClientRequest
	Services      []ServiceItemInput `json:"services"`
	PaymentConfig PaymentConfigInput `json:"paymentConfig"`
}

// Validate checks the client part, every service line and the payment configuration.
func (r CreatePhoneCallClientRequest) Validate() error {
	if err := r.CreateClientRequest.Validate(); err != nil {
		return err
	}
	for _, s := range r.Services {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	if err := validateStruct(r.PaymentConfig); err != nil {
		return err
	}
	if err := requireNonNegative("paymentConfig.totalAmount", r.PaymentConfig.TotalAmount); err != nil {
		return err
	}
	return validateInstallments(r.PaymentConfig.Installments)
}

// InstallmentResponse defines the data returned for an installment.
type InstallmentResponse struct {
	InstallmentID string                   `json:"installmentID"`
	Description   string                   `json:"description"`
	Percentage    decimal.Decimal          `json:"percentage"`
	Amount        decimal.Decimal          `json:"amount"`
	DueDate       time.Time                `json:"dueDate"`
	Status        domain.InstallmentStatus `json:"status"`
	PaidAt        *time.Time               `json:"paidAt,omitempty"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID       string                 `json:"paymentID"`
	ClientID        string                 `json:"clientID"`
	DossierID       string                 `json:"dossierID,omitempty"`
	TotalAmount     decimal.Decimal        `json:"totalAmount"`
	PaymentOption   domain.PaymentOption   `json:"paymentOption"`
	PaymentModality domain.PaymentModality `json:"paymentModality"`
	TransferCode    string                 `json:"transferCode"`
	Notes           string                 `json:"notes"`
	Installments    []InstallmentResponse  `json:"installments"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	insts := make([]InstallmentResponse, len(p.Installments))
	for i, in := range p.Installments {
		insts[i] = InstallmentResponse{
			InstallmentID: in.InstallmentID,
			Description:   in.Description,
			Percentage:    in.Percentage,
			Amount:        in.Amount,
			DueDate:       in.DueDate,
			Status:        in.Status,
			PaidAt:        in.PaidAt,
		}
	}
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		ClientID:        p.ClientID,
		DossierID:       p.DossierID,
		TotalAmount:     p.TotalAmount,
		PaymentOption:   p.PaymentOption,
		PaymentModality: p.PaymentModality,
		TransferCode:    p.TransferCode,
		Notes:           p.Notes,
		Installments:    insts,
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}

// ToPaymentResponses converts a slice of domain.Payment.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
