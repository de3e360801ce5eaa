package pgsql

import (
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		DossierRepo:     newPgxDossierRepository(dbPool),
		ServiceItemRepo: newPgxServiceItemRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		CaisseRepo:      newPgxCaisseRepository(dbPool),
		LedgerRepo:      newPgxLedgerRepository(dbPool),
		ReportRepo:      newPgxReportRepository(dbPool),
		AttachmentRepo:  newPgxAttachmentRepository(dbPool),
	}
}
