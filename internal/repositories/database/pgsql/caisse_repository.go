package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	"github.com/SscSPs/visa_office_app/internal/models"
	"github.com/SscSPs/visa_office_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCaisseRepository struct {
	BaseRepository
}

func newPgxCaisseRepository(pool *pgxpool.Pool) portsrepo.CaisseRepositoryWithTx {
	return &PgxCaisseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCaisseRepository implements portsrepo.CaisseRepositoryWithTx
var _ portsrepo.CaisseRepositoryWithTx = (*PgxCaisseRepository)(nil)

const caisseColumns = `caisse_id, name, type, balance, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCaisseRepository) SaveCaisse(ctx context.Context, caisse domain.Caisse) error {
	m := mapping.ToModelCaisse(caisse)
	query := `
		INSERT INTO caisses (` + caisseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CaisseID,
		m.Name,
		m.Type,
		m.Balance,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert caisse %s: %w", m.CaisseID, err)
	}
	return nil
}

func (r *PgxCaisseRepository) FindCaisseByID(ctx context.Context, caisseID string) (*domain.Caisse, error) {
	return findCaisse(ctx, r.Pool, `SELECT `+caisseColumns+` FROM caisses WHERE caisse_id = $1;`, caisseID)
}

func (r *PgxCaisseRepository) ListActiveCaisses(ctx context.Context) ([]domain.Caisse, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+caisseColumns+` FROM caisses WHERE is_active ORDER BY created_at ASC, caisse_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list caisses: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Caisse])
	if err != nil {
		return nil, fmt.Errorf("failed to scan caisses: %w", err)
	}
	caisses := make([]domain.Caisse, len(ms))
	for i, m := range ms {
		caisses[i] = mapping.ToDomainCaisse(m)
	}
	return caisses, nil
}

// FindCaisseByIDForUpdate locks the caisse row until tx ends.
func (r *PgxCaisseRepository) FindCaisseByIDForUpdate(ctx context.Context, tx pgx.Tx, caisseID string) (*domain.Caisse, error) {
	return findCaisse(ctx, tx, `SELECT `+caisseColumns+` FROM caisses WHERE caisse_id = $1 FOR UPDATE;`, caisseID)
}

func (r *PgxCaisseRepository) UpdateCaisseBalanceInTx(ctx context.Context, tx pgx.Tx, caisseID string, balance decimal.Decimal, userID string, now time.Time) error {
	return execAffectingOne(ctx, tx, "update balance of caisse", caisseID,
		`UPDATE caisses SET balance = $2, last_updated_at = $3, last_updated_by = $4 WHERE caisse_id = $1;`,
		caisseID, balance, now, userID)
}

func findCaisse(ctx context.Context, q querier, query, caisseID string) (*domain.Caisse, error) {
	rows, err := q.Query(ctx, query, caisseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query caisse %s: %w", caisseID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Caisse])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan caisse %s: %w", caisseID, err)
	}
	caisse := mapping.ToDomainCaisse(m)
	return &caisse, nil
}
