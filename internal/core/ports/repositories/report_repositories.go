package repositories

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
)

// ReportRepositoryFacade persists immutable financial reports. There is no update.
type ReportRepositoryFacade interface {
	SaveReport(ctx context.Context, report domain.FinancialReport) error

	// ListReports returns every report, newest first.
	ListReports(ctx context.Context) ([]domain.FinancialReport, error)
}
