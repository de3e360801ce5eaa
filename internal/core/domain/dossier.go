package domain

import "github.com/shopspring/decimal"

// DossierStatus is the visa-processing state of a case file.
type DossierStatus string

const (
	DossierInProgress DossierStatus = "EN_COURS"
	DossierOnHold     DossierStatus = "EN_ATTENTE"
	DossierApproved   DossierStatus = "VALIDE"
	DossierRejected   DossierStatus = "REFUSE"
	DossierClosed     DossierStatus = "TERMINE"
	DossierCancelled  DossierStatus = "ANNULE"
)

// Dossier is a client's case file. It owns service items and payments.
type Dossier struct {
	DossierID   string        `json:"dossierID"`
	ClientID    string        `json:"clientID"`
	Reference   string        `json:"reference"`
	VisaType    VisaType      `json:"visaType"`
	Destination string        `json:"destination"`
	Status      DossierStatus `json:"status"`
	Notes       string        `json:"notes"`
	AuditFields

	ServiceItems []ServiceItem `json:"serviceItems,omitempty"`
	Payments     []Payment     `json:"payments,omitempty"`
}

// TotalAmount sums the line totals of the loaded service items.
func (d Dossier) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.ServiceItems {
		total = total.Add(item.LineTotal())
	}
	return total
}
