package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	"github.com/SscSPs/visa_office_app/internal/models"
	"github.com/SscSPs/visa_office_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const transactionColumns = `transaction_id, caisse_id, payment_id, type, category, amount, description,
	status, transaction_date, created_at, created_by, last_updated_at, last_updated_by`

// listRowSelect joins each transaction with its caisse and, when linked, the payment's client.
const listRowSelect = `
	SELECT t.transaction_id, t.caisse_id, t.payment_id, t.type, t.category, t.amount, t.description,
	       t.status, t.transaction_date, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
	       k.name AS caisse_name, k.type AS caisse_type,
	       p.client_id AS client_id, c.full_name AS client_full_name
	FROM caisse_transactions t
	JOIN caisses k ON k.caisse_id = t.caisse_id
	LEFT JOIN payments p ON p.payment_id = t.payment_id
	LEFT JOIN clients c ON c.client_id = p.client_id`

func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}
	if filter.CaisseID != "" {
		add("t.caisse_id = ?", filter.CaisseID)
	}
	if filter.Type != "" {
		add("t.type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		add("t.status = ?", string(filter.Status))
	}
	if filter.StartDate != nil {
		add("t.transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("t.transaction_date <= ?", *filter.EndDate)
	}
	query := listRowSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.transaction_date DESC, t.created_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TransactionListRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	txns := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		txns[i] = mapping.ToDomainTransactionListRow(m)
	}
	return txns, nil
}

func (r *PgxLedgerRepository) ListRecentTransactions(ctx context.Context, caisseID string, limit int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM caisse_transactions
		WHERE caisse_id = $1 ORDER BY transaction_date DESC, created_at DESC LIMIT $2;`
	return r.collect(ctx, query, caisseID, limit)
}

func (r *PgxLedgerRepository) ListCompletedTransactions(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM caisse_transactions
		WHERE status = $1 AND transaction_date >= $2 AND transaction_date <= $3
		ORDER BY transaction_date ASC;`
	return r.collect(ctx, query, string(domain.TransactionCompleted), start, end)
}

func (r *PgxLedgerRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO caisse_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.CaisseID,
		m.PaymentID,
		m.Type,
		m.Category,
		m.Amount,
		m.Description,
		m.Status,
		m.TransactionDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFoundf("caisse %s or payment of transaction", m.CaisseID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) collect(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	txns := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		txns[i] = mapping.ToDomainTransaction(m)
	}
	return txns, nil
}
