package services

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/utils/pagination"
)

// ClientReaderSvc defines read operations for clients
type ClientReaderSvc interface {
	// GetClient returns the client with every child collection and its dossiers.
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients returns one page of clients and the pagination metadata.
	ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, pagination.Meta, error)
}

// ClientWriterSvc defines write operations for clients
type ClientWriterSvc interface {
	// CreateClient creates the client, its children and an initial dossier atomically.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error)

	// UpdateClient patches scalar fields and replaces any supplied child collection.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error)

	DeleteClient(ctx context.Context, clientID string) error
}

// FamilyMemberSvc manages family members outside the client update path
type FamilyMemberSvc interface {
	AddFamilyMember(ctx context.Context, clientID string, req dto.FamilyMemberInput) (*domain.FamilyMember, error)
	RemoveFamilyMember(ctx context.Context, familyMemberID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
	FamilyMemberSvc
}

// PhoneCallSvc onboards a client taken over the phone in one step.
type PhoneCallSvc interface {
	CreatePhoneCallClient(ctx context.Context, req dto.CreatePhoneCallClientRequest, userID string) (*domain.Client, error)
}
