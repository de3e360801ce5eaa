package repositories

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client with phone numbers, employers, family members and attachments.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients returns one page of clients matching filter, most recently updated first,
	// together with the total number of matching rows.
	ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, int, error)

	// FindFamilyMemberByID retrieves a single family member.
	FindFamilyMemberByID(ctx context.Context, familyMemberID string) (*domain.FamilyMember, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// DeleteClient hard-deletes a client; children go through ON DELETE CASCADE.
	DeleteClient(ctx context.Context, clientID string) error

	// SaveFamilyMember inserts a family member for an existing client.
	SaveFamilyMember(ctx context.Context, member domain.FamilyMember) error

	// DeleteFamilyMember removes a family member.
	DeleteFamilyMember(ctx context.Context, familyMemberID string) error
}

// ClientTransactionSupport defines client writes that take part in a caller-owned transaction
type ClientTransactionSupport interface {
	// SaveClientInTx inserts the client row and its phone numbers, employers and family members.
	SaveClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error

	// UpdateClientInTx updates the scalar columns of a client.
	UpdateClientInTx(ctx context.Context, tx pgx.Tx, client domain.Client) error

	// ReplacePhoneNumbersInTx deletes all phone numbers of the client then inserts phones.
	ReplacePhoneNumbersInTx(ctx context.Context, tx pgx.Tx, clientID string, phones []domain.PhoneNumber) error

	// ReplaceEmployersInTx deletes all employers of the client then inserts employers.
	ReplaceEmployersInTx(ctx context.Context, tx pgx.Tx, clientID string, employers []domain.Employer) error

	// ReplaceFamilyMembersInTx deletes all family members of the client then inserts members.
	ReplaceFamilyMembersInTx(ctx context.Context, tx pgx.Tx, clientID string, members []domain.FamilyMember) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientTransactionSupport
}

// ClientRepositoryWithTx extends ClientRepositoryFacade with transaction capabilities
type ClientRepositoryWithTx interface {
	ClientRepositoryFacade
	TransactionManager
}
