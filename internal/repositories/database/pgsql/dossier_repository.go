package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	"github.com/SscSPs/visa_office_app/internal/models"
	"github.com/SscSPs/visa_office_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDossierRepository struct {
	BaseRepository
}

func newPgxDossierRepository(pool *pgxpool.Pool) portsrepo.DossierRepositoryWithTx {
	return &PgxDossierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDossierRepository implements portsrepo.DossierRepositoryWithTx
var _ portsrepo.DossierRepositoryWithTx = (*PgxDossierRepository)(nil)

const dossierColumns = `dossier_id, client_id, reference, visa_type, destination, status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxDossierRepository) FindDossierByID(ctx context.Context, dossierID string) (*domain.Dossier, error) {
	dossiers, err := loadDossiers(ctx, r.Pool, `WHERE dossier_id = $1`, dossierID)
	if err != nil {
		return nil, err
	}
	if len(dossiers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &dossiers[0], nil
}

func (r *PgxDossierRepository) ListDossiers(ctx context.Context, clientID string) ([]domain.Dossier, error) {
	if clientID == "" {
		return loadDossiers(ctx, r.Pool, "")
	}
	return loadDossiers(ctx, r.Pool, `WHERE client_id = $1`, clientID)
}

func (r *PgxDossierRepository) SaveDossier(ctx context.Context, dossier domain.Dossier) error {
	return insertDossier(ctx, r.Pool, dossier)
}

func (r *PgxDossierRepository) SaveDossierInTx(ctx context.Context, tx pgx.Tx, dossier domain.Dossier) error {
	return insertDossier(ctx, tx, dossier)
}

func (r *PgxDossierRepository) UpdateDossier(ctx context.Context, dossier domain.Dossier) error {
	m := mapping.ToModelDossier(dossier)
	query := `
		UPDATE dossiers SET
			reference = $2, visa_type = $3, destination = $4, status = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE dossier_id = $1;
	`
	return execAffectingOne(ctx, r.Pool, "update dossier", m.DossierID, query,
		m.DossierID, m.Reference, m.VisaType, m.Destination, m.Status, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy)
}

func (r *PgxDossierRepository) DeleteDossier(ctx context.Context, dossierID string) error {
	return execAffectingOne(ctx, r.Pool, "delete dossier", dossierID, `DELETE FROM dossiers WHERE dossier_id = $1;`, dossierID)
}

func insertDossier(ctx context.Context, q querier, dossier domain.Dossier) error {
	m := mapping.ToModelDossier(dossier)
	query := `
		INSERT INTO dossiers (` + dossierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := q.Exec(ctx, query,
		m.DossierID,
		m.ClientID,
		m.Reference,
		m.VisaType,
		m.Destination,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFoundf("client %s", m.ClientID)
		}
		return fmt.Errorf("failed to insert dossier %s: %w", m.DossierID, err)
	}
	return nil
}

// loadDossiers selects dossiers newest first and attaches service items and payments.
func loadDossiers(ctx context.Context, q querier, where string, args ...any) ([]domain.Dossier, error) {
	rows, err := q.Query(ctx, `SELECT `+dossierColumns+` FROM dossiers `+where+` ORDER BY created_at DESC, dossier_id;`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dossiers: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Dossier])
	if err != nil {
		return nil, fmt.Errorf("failed to scan dossiers: %w", err)
	}
	if len(ms) == 0 {
		return []domain.Dossier{}, nil
	}

	dossiers := make([]domain.Dossier, len(ms))
	ids := make([]string, len(ms))
	for i, m := range ms {
		dossiers[i] = mapping.ToDomainDossier(m)
		dossiers[i].ServiceItems = []domain.ServiceItem{}
		dossiers[i].Payments = []domain.Payment{}
		ids[i] = m.DossierID
	}
	index := make(map[string]int, len(dossiers))
	for i, d := range dossiers {
		index[d.DossierID] = i
	}

	items, err := loadServiceItems(ctx, q, `WHERE dossier_id = ANY($1::uuid[]) ORDER BY created_at ASC, service_item_id`, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		d := &dossiers[index[item.DossierID]]
		d.ServiceItems = append(d.ServiceItems, item)
	}

	payments, err := loadPayments(ctx, q, `WHERE dossier_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		d := &dossiers[index[p.DossierID]]
		d.Payments = append(d.Payments, p)
	}
	return dossiers, nil
}
