package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	"github.com/SscSPs/visa_office_app/internal/models"
	"github.com/SscSPs/visa_office_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttachmentRepository struct {
	pool *pgxpool.Pool
}

func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepositoryFacade {
	return &PgxAttachmentRepository{pool: pool}
}

var _ portsrepo.AttachmentRepositoryFacade = (*PgxAttachmentRepository)(nil)

func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+attachmentColumns+` FROM attachments WHERE attachment_id = $1;`, attachmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachment %s: %w", attachmentID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Attachment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan attachment %s: %w", attachmentID, err)
	}
	a := mapping.ToDomainAttachment(m)
	return &a, nil
}

func (r *PgxAttachmentRepository) ListAttachmentsByClient(ctx context.Context, clientID string) ([]domain.Attachment, error) {
	return loadAttachments(ctx, r.pool, clientID)
}

func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	m := mapping.ToModelAttachment(attachment)
	query := `
		INSERT INTO attachments (` + attachmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AttachmentID,
		m.ClientID,
		m.AttachmentType,
		m.OriginalName,
		m.StorageKey,
		m.MimeType,
		m.Size,
		m.UploadedBy,
		m.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFoundf("client %s", m.ClientID)
		}
		return fmt.Errorf("failed to insert attachment %s: %w", m.AttachmentID, err)
	}
	return nil
}

func (r *PgxAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	return execAffectingOne(ctx, r.pool, "delete attachment", attachmentID,
		`DELETE FROM attachments WHERE attachment_id = $1;`, attachmentID)
}
