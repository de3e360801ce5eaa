package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	"github.com/SscSPs/visa_office_app/internal/models"
	"github.com/SscSPs/visa_office_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportRepository struct {
	pool *pgxpool.Pool
}

func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{pool: pool}
}

var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

const reportColumns = `report_id, start_date, end_date, total_income, total_expenses, total_tax, net_profit,
	caisse_balances, generated_by, created_at`

func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.FinancialReport) error {
	m, err := mapping.ToModelFinancialReport(report)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO financial_reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.pool.Exec(ctx, query,
		m.ReportID,
		m.StartDate,
		m.EndDate,
		m.TotalIncome,
		m.TotalExpenses,
		m.TotalTax,
		m.NetProfit,
		string(m.CaisseBalances),
		m.GeneratedBy,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert financial report %s: %w", m.ReportID, err)
	}
	return nil
}

func (r *PgxReportRepository) ListReports(ctx context.Context) ([]domain.FinancialReport, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+reportColumns+` FROM financial_reports ORDER BY created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial reports: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FinancialReport])
	if err != nil {
		return nil, fmt.Errorf("failed to scan financial reports: %w", err)
	}
	reports := make([]domain.FinancialReport, 0, len(ms))
	for _, m := range ms {
		report, err := mapping.ToDomainFinancialReport(m)
		if err != nil {
			return nil, fmt.Errorf("financial report %s: %w", m.ReportID, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}
