package dto

import (
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDossierRequest defines the data needed to open a dossier for a client.
type CreateDossierRequest struct {
	ClientID    string               `json:"clientID" validate:"required,uuid"`
	Reference   string               `json:"reference" validate:"max=100"`
	VisaType    domain.VisaType      `json:"visaType" validate:"omitempty,visa_type"`
	Destination string               `json:"destination"`
	Status      domain.DossierStatus `json:"status" validate:"omitempty,dossier_status"`
	Notes       string               `json:"notes"`
}

// Validate checks the request shape.
func (r CreateDossierRequest) Validate() error {
	return validateStruct(r)
}

// UpdateDossierRequest defines the data allowed for updating a dossier.
type UpdateDossierRequest struct {
	Reference   *string               `json:"reference" validate:"omitempty,max=100"`
	VisaType    *domain.VisaType      `json:"visaType" validate:"omitempty,visa_type"`
	Destination *string               `json:"destination"`
	Status      *domain.DossierStatus `json:"status" validate:"omitempty,dossier_status"`
	Notes       *string               `json:"notes"`
}

// Validate checks the request shape.
func (r UpdateDossierRequest) Validate() error {
	return validateStruct(r)
}

// ListDossiersParams defines query parameters for listing dossiers.
type ListDossiersParams struct {
	ClientID string `form:"clientId" validate:"omitempty,uuid"`
}

// Validate checks the query parameters.
func (p ListDossiersParams) Validate() error {
	return validateStruct(p)
}

// DossierResponse defines the data returned for a dossier, with derived totals.
type DossierResponse struct {
	DossierID     string                `json:"dossierID"`
	ClientID      string                `json:"clientID"`
	Reference     string                `json:"reference"`
	VisaType      domain.VisaType       `json:"visaType"`
	Destination   string                `json:"destination"`
	Status        domain.DossierStatus  `json:"status"`
	Notes         string                `json:"notes"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	ServicesCount int                   `json:"servicesCount"`
	PaymentsCount int                   `json:"paymentsCount"`
	ServiceItems  []ServiceItemResponse `json:"serviceItems"`
	Payments      []PaymentResponse     `json:"payments"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"`
}

// ToDossierResponse converts a domain.Dossier to DossierResponse DTO.
// Counts and totals come from the loaded children and are 0 when none are loaded.
func ToDossierResponse(d *domain.Dossier) DossierResponse {
	return DossierResponse{
		DossierID:     d.DossierID,
		ClientID:      d.ClientID,
		Reference:     d.Reference,
		VisaType:      d.VisaType,
		Destination:   d.Destination,
		Status:        d.Status,
		Notes:         d.Notes,
		TotalAmount:   d.TotalAmount(),
		ServicesCount: len(d.ServiceItems),
		PaymentsCount: len(d.Payments),
		ServiceItems:  ToServiceItemResponses(d.ServiceItems),
		Payments:      ToPaymentResponses(d.Payments),
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDossierResponses converts a slice of domain.Dossier.
func ToDossierResponses(dossiers []domain.Dossier) []DossierResponse {
	res := make([]DossierResponse, len(dossiers))
	for i := range dossiers {
		res[i] = ToDossierResponse(&dossiers[i])
	}
	return res
}
