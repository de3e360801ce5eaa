package services

import (
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store portssvc.BlobStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.UserRepo, TokenConfig{
		Secret: cfg.JWTSecret,
		Expiry: cfg.JWTExpiryDuration,
		Issuer: cfg.JWTIssuer,
	})

	container.Client = NewClientService(repos.ClientRepo, repos.DossierRepo)
	container.PhoneCall = NewPhoneCallService(repos.ClientRepo, repos.DossierRepo, repos.ServiceItemRepo, repos.PaymentRepo)
	container.Dossier = NewDossierService(repos.DossierRepo, repos.ClientRepo)
	container.ServiceItem = NewServiceItemService(repos.ServiceItemRepo, repos.DossierRepo, repos.ClientRepo)

	// Installment settlement writes to the ledger, so payments share the caisse and ledger repositories.
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.ClientRepo, repos.DossierRepo, repos.CaisseRepo, repos.LedgerRepo)
	container.Financial = NewFinancialService(repos.CaisseRepo, repos.LedgerRepo, repos.ReportRepo, cfg.TaxRate)

	container.Attachment = NewAttachmentService(repos.AttachmentRepo, repos.ClientRepo, store, cfg.UploadMaxBytes, cfg.UploadAllowedMimeTypes)

	return container
}
