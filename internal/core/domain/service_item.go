package domain

import "github.com/shopspring/decimal"

// ServiceType is the catalogue entry a service item bills for.
type ServiceType string

const (
	ServiceVisa            ServiceType = "VISA"
	ServiceHotelBooking    ServiceType = "RESERVATION_HOTEL"
	ServiceFlightBooking   ServiceType = "RESERVATION_VOL"
	ServiceTravelInsurance ServiceType = "ASSURANCE_VOYAGE"
	ServiceTranslation     ServiceType = "TRADUCTION"
	ServiceAppointment     ServiceType = "RENDEZ_VOUS"
	ServiceFullDossier     ServiceType = "DOSSIER_COMPLET"
	ServiceOther           ServiceType = "AUTRE"
)

// ServiceItem is a billable line attached to a dossier.
type ServiceItem struct {
	ServiceItemID string          `json:"serviceItemID"`
	DossierID     string          `json:"dossierID"`
	ServiceType   ServiceType     `json:"serviceType"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	AuditFields
}

// LineTotal is quantity × unit price.
func (s ServiceItem) LineTotal() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
