package mapping

import (
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/models"
)

// ToModelDossier converts a domain Dossier to a model Dossier
func ToModelDossier(d domain.Dossier) models.Dossier {
	return models.Dossier{
		DossierID:   d.DossierID,
		ClientID:    d.ClientID,
		Reference:   d.Reference,
		VisaType:    string(d.VisaType),
		Destination: d.Destination,
		Status:      string(d.Status),
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDossier converts a model Dossier to a domain Dossier without children
func ToDomainDossier(m models.Dossier) domain.Dossier {
	return domain.Dossier{
		DossierID:   m.DossierID,
		ClientID:    m.ClientID,
		Reference:   m.Reference,
		VisaType:    domain.VisaType(m.VisaType),
		Destination: m.Destination,
		Status:      domain.DossierStatus(m.Status),
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelServiceItem converts a domain ServiceItem
func ToModelServiceItem(d domain.ServiceItem) models.ServiceItem {
	return models.ServiceItem{
		ServiceItemID: d.ServiceItemID,
		DossierID:     d.DossierID,
		ServiceType:   string(d.ServiceType),
		Description:   d.Description,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainServiceItem converts a model ServiceItem
func ToDomainServiceItem(m models.ServiceItem) domain.ServiceItem {
	return domain.ServiceItem{
		ServiceItemID: m.ServiceItemID,
		DossierID:     m.DossierID,
		ServiceType:   domain.ServiceType(m.ServiceType),
		Description:   m.Description,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayment converts a domain Payment (scalar columns only)
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:       d.PaymentID,
		ClientID:        d.ClientID,
		DossierID:       nullableString(d.DossierID),
		TotalAmount:     d.TotalAmount,
		PaymentOption:   string(d.PaymentOption),
		PaymentModality: string(d.PaymentModality),
		TransferCode:    d.TransferCode,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment with an empty installment list
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:       m.PaymentID,
		ClientID:        m.ClientID,
		DossierID:       derefString(m.DossierID),
		TotalAmount:     m.TotalAmount,
		PaymentOption:   domain.PaymentOption(m.PaymentOption),
		PaymentModality: domain.PaymentModality(m.PaymentModality),
		TransferCode:    m.TransferCode,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		Installments:    []domain.PaymentInstallment{},
	}
}

// ToModelInstallment converts a domain PaymentInstallment
func ToModelInstallment(d domain.PaymentInstallment) models.PaymentInstallment {
	return models.PaymentInstallment{
		InstallmentID: d.InstallmentID,
		PaymentID:     d.PaymentID,
		Description:   d.Description,
		Percentage:    d.Percentage,
		Amount:        d.Amount,
		DueDate:       d.DueDate,
		Status:        string(d.Status),
		PaidAt:        d.PaidAt,
	}
}

// ToDomainInstallment converts a model PaymentInstallment
func ToDomainInstallment(m models.PaymentInstallment) domain.PaymentInstallment {
	return domain.PaymentInstallment{
		InstallmentID: m.InstallmentID,
		PaymentID:     m.PaymentID,
		Description:   m.Description,
		Percentage:    m.Percentage,
		Amount:        m.Amount,
		DueDate:       m.DueDate,
		Status:        domain.InstallmentStatus(m.Status),
		PaidAt:        m.PaidAt,
	}
}
