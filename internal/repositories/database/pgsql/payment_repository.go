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
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const (
	paymentColumns = `payment_id, client_id, dossier_id, total_amount, payment_option, payment_modality,
	transfer_code, notes, created_at, created_by, last_updated_at, last_updated_by`
	installmentColumns = `installment_id, payment_id, description, percentage, amount, due_date, status, paid_at`
)

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payments, err := loadPayments(ctx, r.Pool, `WHERE payment_id = $1`, paymentID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &payments[0], nil
}

func (r *PgxPaymentRepository) ListPaymentsByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	return loadPayments(ctx, r.Pool, `WHERE client_id = $1`, clientID)
}

func (r *PgxPaymentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.PaymentInstallment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+installmentColumns+` FROM payment_installments WHERE installment_id = $1;`, installmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installment %s: %w", installmentID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PaymentInstallment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan installment %s: %w", installmentID, err)
	}
	inst := mapping.ToDomainInstallment(m)
	return &inst, nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	return execAffectingOne(ctx, r.Pool, "delete payment", paymentID, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
}

// SavePaymentInTx inserts the payment row followed by its installments.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.ClientID,
		m.DossierID,
		m.TotalAmount,
		m.PaymentOption,
		m.PaymentModality,
		m.TransferCode,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFoundf("client %s or dossier of payment", m.ClientID)
		}
		return fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}

	batch := &pgx.Batch{}
	queueInstallments(batch, payment.PaymentID, payment.Installments)
	return sendBatch(ctx, tx, batch, "installments for payment "+m.PaymentID)
}

func (r *PgxPaymentRepository) UpdatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		UPDATE payments SET
			total_amount = $2, payment_option = $3, payment_modality = $4,
			transfer_code = $5, notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE payment_id = $1;
	`
	return execAffectingOne(ctx, tx, "update payment", m.PaymentID, query,
		m.PaymentID,
		m.TotalAmount,
		m.PaymentOption,
		m.PaymentModality,
		m.TransferCode,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
}

func (r *PgxPaymentRepository) ReplaceInstallmentsInTx(ctx context.Context, tx pgx.Tx, paymentID string, installments []domain.PaymentInstallment) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM payment_installments WHERE payment_id = $1;`, paymentID)
	queueInstallments(batch, paymentID, installments)
	return sendBatch(ctx, tx, batch, "installments for payment "+paymentID)
}

// MarkInstallmentPaidInTx only touches PENDING rows so a concurrent double payment affects nothing.
func (r *PgxPaymentRepository) MarkInstallmentPaidInTx(ctx context.Context, tx pgx.Tx, installmentID string, paidAt time.Time) error {
	return execAffectingOne(ctx, tx, "mark installment paid", installmentID,
		`UPDATE payment_installments SET status = $2, paid_at = $3 WHERE installment_id = $1 AND status = $4;`,
		installmentID, string(domain.InstallmentPaid), paidAt, string(domain.InstallmentPending))
}

func queueInstallments(batch *pgx.Batch, paymentID string, installments []domain.PaymentInstallment) {
	for _, inst := range installments {
		m := mapping.ToModelInstallment(inst)
		batch.Queue(`INSERT INTO payment_installments (`+installmentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.InstallmentID, paymentID, m.Description, m.Percentage, m.Amount, m.DueDate, m.Status, m.PaidAt)
	}
}

// loadPayments selects payments matching where (newest first) and attaches their installments.
func loadPayments(ctx context.Context, q querier, where string, args ...any) ([]domain.Payment, error) {
	rows, err := q.Query(ctx, `SELECT `+paymentColumns+` FROM payments `+where+` ORDER BY created_at DESC, payment_id;`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	if len(ms) == 0 {
		return []domain.Payment{}, nil
	}

	payments := make([]domain.Payment, len(ms))
	ids := make([]string, len(ms))
	for i, m := range ms {
		payments[i] = mapping.ToDomainPayment(m)
		ids[i] = m.PaymentID
	}

	instRows, err := q.Query(ctx, `SELECT `+installmentColumns+` FROM payment_installments
		WHERE payment_id = ANY($1::uuid[]) ORDER BY due_date ASC, installment_id;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	insts, err := pgx.CollectRows(instRows, pgx.RowToStructByName[models.PaymentInstallment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan installments: %w", err)
	}
	byPayment := make(map[string][]domain.PaymentInstallment, len(payments))
	for _, inst := range insts {
		byPayment[inst.PaymentID] = append(byPayment[inst.PaymentID], mapping.ToDomainInstallment(inst))
	}
	for i := range payments {
		if list, ok := byPayment[payments[i].PaymentID]; ok {
			payments[i].Installments = list
		}
	}
	return payments, nil
}
