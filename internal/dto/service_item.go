package dto

import (
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ServiceItemInput is one billable line supplied on create.
type ServiceItemInput struct {
	ServiceType domain.ServiceType `json:"serviceType" validate:"required,service_type"`
	Description string             `json:"description"`
	Quantity    int                `json:"quantity" validate:"min=1"`
	UnitPrice   decimal.Decimal    `json:"unitPrice"`
}

// Validate checks the line shape and that the unit price is not negative.
func (r ServiceItemInput) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return requireNonNegative("unitPrice", r.UnitPrice)
}

// CreateServiceItemsRequest is the body of the batch create endpoint.
type CreateServiceItemsRequest struct {
	Items []ServiceItemInput `json:"items"`
}

// Validate checks every line. Emptiness is reported by the service.
func (r CreateServiceItemsRequest) Validate() error {
	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateServiceItemRequest defines the data allowed for updating a service item.
type UpdateServiceItemRequest struct {
	ServiceType *domain.ServiceType `json:"serviceType" validate:"omitempty,service_type"`
	Description *string             `json:"description"`
	Quantity    *int                `json:"quantity" validate:"omitempty,min=1"`
	UnitPrice   *decimal.Decimal    `json:"unitPrice"`
}

// Validate checks the request shape.
func (r UpdateServiceItemRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.UnitPrice != nil {
		return requireNonNegative("unitPrice", *r.UnitPrice)
	}
	return nil
}

// ServiceItemResponse defines the data returned for a service item.
type ServiceItemResponse struct {
	ServiceItemID string             `json:"serviceItemID"`
	DossierID     string             `json:"dossierID"`
	ServiceType   domain.ServiceType `json:"serviceType"`
	Description   string             `json:"description"`
	Quantity      int                `json:"quantity"`
	UnitPrice     decimal.Decimal    `json:"unitPrice"`
	LineTotal     decimal.Decimal    `json:"lineTotal"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// LastPriceParams are the query parameters of the single last-price lookup.
type LastPriceParams struct {
	ServiceType domain.ServiceType `form:"serviceType" validate:"required,service_type"`
}

// Validate checks the query values.
func (p LastPriceParams) Validate() error {
	return validateStruct(p)
}

// LastPricesParams accepts a repeated serviceType query parameter.
type LastPricesParams struct {
	ServiceTypes []domain.ServiceType `form:"serviceType" validate:"dive,service_type"`
}

// Validate checks the query values.
func (p LastPricesParams) Validate() error {
	return validateStruct(p)
}

// LastPriceResponse carries the latest known unit price of a service type; null when none exists.
type LastPriceResponse struct {
	ServiceType domain.ServiceType `json:"serviceType"`
	UnitPrice   *decimal.Decimal   `json:"unitPrice"`
}

// ClientServicesTotalResponse is the per-client aggregation of service line totals.
type ClientServicesTotalResponse struct {
	ClientID      string          `json:"clientID"`
	ServicesCount int             `json:"servicesCount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// ToServiceItemResponse converts a domain.ServiceItem to ServiceItemResponse DTO
func ToServiceItemResponse(s *domain.ServiceItem) ServiceItemResponse {
	return ServiceItemResponse{
		ServiceItemID: s.ServiceItemID,
		DossierID:     s.DossierID,
		ServiceType:   s.ServiceType,
		Description:   s.Description,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		LineTotal:     s.LineTotal(),
		CreatedAt:     s.CreatedAt,
	}
}

// ToServiceItemResponses converts a slice of domain.ServiceItem.
func ToServiceItemResponses(items []domain.ServiceItem) []ServiceItemResponse {
	res := make([]ServiceItemResponse, len(items))
	for i := range items {
		res[i] = ToServiceItemResponse(&items[i])
	}
	return res
}
