package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	ClientRepo      ClientRepositoryWithTx
	DossierRepo     DossierRepositoryWithTx
	ServiceItemRepo ServiceItemRepositoryWithTx
	PaymentRepo     PaymentRepositoryWithTx
	CaisseRepo      CaisseRepositoryWithTx
	LedgerRepo      LedgerRepositoryFacade
	ReportRepo      ReportRepositoryFacade
	AttachmentRepo  AttachmentRepositoryFacade
}
