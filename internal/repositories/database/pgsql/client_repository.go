package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	"github.com/SscSPs/visa_office_app/internal/models"
	"github.com/SscSPs/visa_office_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryWithTx {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryWithTx
var _ portsrepo.ClientRepositoryWithTx = (*PgxClientRepository)(nil)

const clientColumns = `client_id, full_name, email, address, nationality, date_of_birth, passport_number,
	passport_expiry, visa_type, destination, client_type, status, is_minor, guardian_name,
	guardian_phone, guardian_relation, notes, created_at, created_by, last_updated_at, last_updated_by`

const (
	phoneNumberColumns  = `phone_number_id, client_id, number, label, sort_order`
	employerColumns     = `employer_id, client_id, name, position, phone, address, sort_order`
	familyMemberColumns = `family_member_id, client_id, full_name, relationship, passport_number, date_of_birth, sort_order`
	attachmentColumns   = `attachment_id, client_id, attachment_type, original_name, storage_key, mime_type, size, uploaded_by, created_at`
)

// FindClientByID retrieves a client and its child collections.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+clientColumns+` FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query client %s: %w", clientID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan client %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(m)

	if client.PhoneNumbers, err = loadPhoneNumbers(ctx, r.Pool, clientID); err != nil {
		return nil, err
	}
	if client.Employers, err = loadEmployers(ctx, r.Pool, clientID); err != nil {
		return nil, err
	}
	if client.FamilyMembers, err = loadFamilyMembers(ctx, r.Pool, clientID); err != nil {
		return nil, err
	}
	if client.Attachments, err = loadAttachments(ctx, r.Pool, clientID); err != nil {
		return nil, err
	}
	return &client, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using the default backslash escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ListClients returns one page of clients without child collections.
func (r *PgxClientRepository) ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error) {
	var conds []string
	var args []any
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.ClientType != "" {
		args = append(args, string(filter.ClientType))
		conds = append(conds, "client_type = $"+strconv.Itoa(len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		p := "$" + strconv.Itoa(len(args))
		conds = append(conds, "(full_name ILIKE "+p+" OR email ILIKE "+p+" OR passport_number ILIKE "+p+")")
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := `SELECT ` + clientColumns + ` FROM clients` + where +
		` ORDER BY last_updated_at DESC, client_id LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan clients: %w", err)
	}

	clients := make([]domain.Client, len(ms))
	for i, m := range ms {
		clients[i] = mapping.ToDomainClient(m)
	}
	return clients, total, nil
}

func (r *PgxClientRepository) FindFamilyMemberByID(ctx context.Context, familyMemberID string) (*domain.FamilyMember, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+familyMemberColumns+` FROM family_members WHERE family_member_id = $1;`, familyMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query family member %s: %w", familyMemberID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.FamilyMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan family member %s: %w", familyMemberID, err)
	}
	member := mapping.ToDomainFamilyMember(m)
	return &member, nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return execAffectingOne(ctx, r.Pool, "delete client", clientID, `DELETE FROM clients WHERE client_id = $1;`, clientID)
}

// SaveFamilyMember appends a member after the existing ones.
func (r *PgxClientRepository) SaveFamilyMember(ctx context.Context, member domain.FamilyMember) error {
	query := `
		INSERT INTO family_members (` + familyMemberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(sort_order) + 1, 0) FROM family_members WHERE client_id = $2));
	`
	_, err := r.Pool.Exec(ctx, query,
		member.FamilyMemberID,
		member.ClientID,
		member.FullName,
		member.Relationship,
		member.PassportNumber,
		member.DateOfBirth,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NotFoundf("client %s", member.ClientID)
		}
		return fmt.Errorf("failed to save family member: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) DeleteFamilyMember(ctx context.Context, familyMemberID string) error {
	return execAffectingOne(ctx, r.Pool, "delete family member", familyMemberID,
		`DELETE FROM family_members WHERE family_member_id = $1;`, familyMemberID)
}

// SaveClientInTx inserts the client row and its child collections.
func (r *PgxClientRepository) SaveClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := tx.Exec(ctx, query,
		m.ClientID,
		m.FullName,
		m.Email,
		m.Address,
		m.Nationality,
		m.DateOfBirth,
		m.PassportNumber,
		m.PassportExpiry,
		m.VisaType,
		m.Destination,
		m.ClientType,
		m.Status,
		m.IsMinor,
		m.GuardianName,
		m.GuardianPhone,
		m.GuardianRelation,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert client %s: %w", m.ClientID, err)
	}

	batch := &pgx.Batch{}
	queuePhoneNumbers(batch, client.ClientID, client.PhoneNumbers)
	queueEmployers(batch, client.ClientID, client.Employers)
	queueFamilyMembers(batch, client.ClientID, client.FamilyMembers)
	return sendBatch(ctx, tx, batch, "client children for "+m.ClientID)
}

// UpdateClientInTx rewrites the scalar columns of a client.
func (r *PgxClientRepository) UpdateClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients SET
			full_name = $2, email = $3, address = $4, nationality = $5, date_of_birth = $6,
			passport_number = $7, passport_expiry = $8, visa_type = $9, destination = $10,
			client_type = $11, status = $12, is_minor = $13, guardian_name = $14,
			guardian_phone = $15, guardian_relation = $16, notes = $17,
			last_updated_at = $18, last_updated_by = $19
		WHERE client_id = $1;
	`
	return execAffectingOne(ctx, tx, "update client", m.ClientID, query,
		m.ClientID,
		m.FullName,
		m.Email,
		m.Address,
		m.Nationality,
		m.DateOfBirth,
		m.PassportNumber,
		m.PassportExpiry,
		m.VisaType,
		m.Destination,
		m.ClientType,
		m.Status,
		m.IsMinor,
		m.GuardianName,
		m.GuardianPhone,
		m.GuardianRelation,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
}

func (r *PgxClientRepository) ReplacePhoneNumbersInTx(ctx context.Context, tx pgx.Tx, clientID string, phones []domain.PhoneNumber) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM phone_numbers WHERE client_id = $1;`, clientID)
	queuePhoneNumbers(batch, clientID, phones)
	return sendBatch(ctx, tx, batch, "phone numbers for "+clientID)
}

func (r *PgxClientRepository) ReplaceEmployersInTx(ctx context.Context, tx pgx.Tx, clientID string, employers []domain.Employer) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM employers WHERE client_id = $1;`, clientID)
	queueEmployers(batch, clientID, employers)
	return sendBatch(ctx, tx, batch, "employers for "+clientID)
}

func (r *PgxClientRepository) ReplaceFamilyMembersInTx(ctx context.Context, tx pgx.Tx, clientID string, members []domain.FamilyMember) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM family_members WHERE client_id = $1;`, clientID)
	queueFamilyMembers(batch, clientID, members)
	return sendBatch(ctx, tx, batch, "family members for "+clientID)
}

func queuePhoneNumbers(batch *pgx.Batch, clientID string, phones []domain.PhoneNumber) {
	for i, p := range phones {
		batch.Queue(`INSERT INTO phone_numbers (`+phoneNumberColumns+`) VALUES ($1, $2, $3, $4, $5);`,
			p.PhoneNumberID, clientID, p.Number, p.Label, i)
	}
}

func queueEmployers(batch *pgx.Batch, clientID string, employers []domain.Employer) {
	for i, e := range employers {
		batch.Queue(`INSERT INTO employers (`+employerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			e.EmployerID, clientID, e.Name, e.Position, e.Phone, e.Address, i)
	}
}

func queueFamilyMembers(batch *pgx.Batch, clientID string, members []domain.FamilyMember) {
	for i, f := range members {
		batch.Queue(`INSERT INTO family_members (`+familyMemberColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			f.FamilyMemberID, clientID, f.FullName, f.Relationship, f.PassportNumber, f.DateOfBirth, i)
	}
}

// sendBatch executes batch inside tx. An empty batch is a no-op.
func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, what string) error {
	if batch.Len() == 0 {
		return nil
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", what, err)
	}
	return nil
}

func loadPhoneNumbers(ctx context.Context, q querier, clientID string) ([]domain.PhoneNumber, error) {
	rows, err := q.Query(ctx, `SELECT `+phoneNumberColumns+` FROM phone_numbers WHERE client_id = $1 ORDER BY sort_order;`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query phone numbers for client %s: %w", clientID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PhoneNumber])
	if err != nil {
		return nil, fmt.Errorf("failed to scan phone numbers: %w", err)
	}
	out := make([]domain.PhoneNumber, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainPhoneNumber(m)
	}
	return out, nil
}

func loadEmployers(ctx context.Context, q querier, clientID string) ([]domain.Employer, error) {
	rows, err := q.Query(ctx, `SELECT `+employerColumns+` FROM employers WHERE client_id = $1 ORDER BY sort_order;`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employers for client %s: %w", clientID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employer])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employers: %w", err)
	}
	out := make([]domain.Employer, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainEmployer(m)
	}
	return out, nil
}

func loadFamilyMembers(ctx context.Context, q querier, clientID string) ([]domain.FamilyMember, error) {
	rows, err := q.Query(ctx, `SELECT `+familyMemberColumns+` FROM family_members WHERE client_id = $1 ORDER BY sort_order;`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query family members for client %s: %w", clientID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FamilyMember])
	if err != nil {
		return nil, fmt.Errorf("failed to scan family members: %w", err)
	}
	out := make([]domain.FamilyMember, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainFamilyMember(m)
	}
	return out, nil
}

func loadAttachments(ctx context.Context, q querier, clientID string) ([]domain.Attachment, error) {
	rows, err := q.Query(ctx, `SELECT `+attachmentColumns+` FROM attachments WHERE client_id = $1 ORDER BY created_at DESC;`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments for client %s: %w", clientID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Attachment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan attachments: %w", err)
	}
	out := make([]domain.Attachment, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainAttachment(m)
	}
	return out, nil
}
