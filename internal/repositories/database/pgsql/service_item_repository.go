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
	"github.com/shopspring/decimal"
)

type PgxServiceItemRepository struct {
	BaseRepository
}

func newPgxServiceItemRepository(pool *pgxpool.Pool) portsrepo.ServiceItemRepositoryWithTx {
	return &PgxServiceItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxServiceItemRepository implements portsrepo.ServiceItemRepositoryWithTx
var _ portsrepo.ServiceItemRepositoryWithTx = (*PgxServiceItemRepository)(nil)

const serviceItemColumns = `service_item_id, dossier_id, service_type, description, quantity, unit_price,
	created_at, created_by, last_updated_at, last_updated_by`

const insertServiceItemQuery = `INSERT INTO service_items (` + serviceItemColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

func serviceItemArgs(item domain.ServiceItem) []any {
	m := mapping.ToModelServiceItem(item)
	return []any{
		m.ServiceItemID,
		m.DossierID,
		m.ServiceType,
		m.Description,
		m.Quantity,
		m.UnitPrice,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func (r *PgxServiceItemRepository) FindServiceItemByID(ctx context.Context, serviceItemID string) (*domain.ServiceItem, error) {
	items, err := loadServiceItems(ctx, r.Pool, `WHERE service_item_id = $1`, serviceItemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[0], nil
}

func (r *PgxServiceItemRepository) ListServiceItemsByDossier(ctx context.Context, dossierID string) ([]domain.ServiceItem, error) {
	return loadServiceItems(ctx, r.Pool, `WHERE dossier_id = $1 ORDER BY created_at ASC, service_item_id`, dossierID)
}

func (r *PgxServiceItemRepository) ListServiceItemsByClient(ctx context.Context, clientID string) ([]domain.ServiceItem, error) {
	return loadServiceItems(ctx, r.Pool,
		`WHERE dossier_id IN (SELECT dossier_id FROM dossiers WHERE client_id = $1) ORDER BY created_at DESC, service_item_id`,
		clientID)
}

// FindLastUnitPrices picks, per service type, the unit price of the newest item.
func (r *PgxServiceItemRepository) FindLastUnitPrices(ctx context.Context, serviceTypes []domain.ServiceType) (map[domain.ServiceType]decimal.Decimal, error) {
	types := make([]string, len(serviceTypes))
	for i, t := range serviceTypes {
		types[i] = string(t)
	}
	query := `
		SELECT DISTINCT ON (service_type) service_type, unit_price
		FROM service_items
		WHERE service_type = ANY($1)
		ORDER BY service_type, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, types)
	if err != nil {
		return nil, fmt.Errorf("failed to query last unit prices: %w", err)
	}
	defer rows.Close()

	prices := make(map[domain.ServiceType]decimal.Decimal, len(serviceTypes))
	for rows.Next() {
		var serviceType string
		var price decimal.Decimal
		if err := rows.Scan(&serviceType, &price); err != nil {
			return nil, fmt.Errorf("failed to scan last unit price: %w", err)
		}
		prices[domain.ServiceType(serviceType)] = price
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate last unit prices: %w", err)
	}
	return prices, nil
}

func (r *PgxServiceItemRepository) SaveServiceItem(ctx context.Context, item domain.ServiceItem) error {
	if _, err := r.Pool.Exec(ctx, insertServiceItemQuery, serviceItemArgs(item)...); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFoundf("dossier %s", item.DossierID)
		}
		return fmt.Errorf("failed to insert service item: %w", err)
	}
	return nil
}

func (r *PgxServiceItemRepository) SaveServiceItemsInTx(ctx context.Context, tx pgx.Tx, items []domain.ServiceItem) error {
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(insertServiceItemQuery, serviceItemArgs(item)...)
	}
	if err := sendBatch(ctx, tx, batch, "service items"); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFoundf("dossier of service items")
		}
		return err
	}
	return nil
}

func (r *PgxServiceItemRepository) UpdateServiceItem(ctx context.Context, item domain.ServiceItem) error {
	m := mapping.ToModelServiceItem(item)
	query := `
		UPDATE service_items SET
			service_type = $2, description = $3, quantity = $4, unit_price = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE service_item_id = $1;
	`
	return execAffectingOne(ctx, r.Pool, "update service item", m.ServiceItemID, query,
		m.ServiceItemID, m.ServiceType, m.Description, m.Quantity, m.UnitPrice, m.LastUpdatedAt, m.LastUpdatedBy)
}

func (r *PgxServiceItemRepository) DeleteServiceItem(ctx context.Context, serviceItemID string) error {
	return execAffectingOne(ctx, r.Pool, "delete service item", serviceItemID,
		`DELETE FROM service_items WHERE service_item_id = $1;`, serviceItemID)
}

// loadServiceItems runs a select with the given WHERE/ORDER tail.
func loadServiceItems(ctx context.Context, q querier, tail string, args ...any) ([]domain.ServiceItem, error) {
	rows, err := q.Query(ctx, `SELECT `+serviceItemColumns+` FROM service_items `+tail+`;`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query service items: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ServiceItem])
	if err != nil {
		return nil, fmt.Errorf("failed to scan service items: %w", err)
	}
	items := make([]domain.ServiceItem, len(ms))
	for i, m := range ms {
		items[i] = mapping.ToDomainServiceItem(m)
	}
	return items, nil
}
