package repositories

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
)

// AttachmentReader defines read operations for attachment metadata
type AttachmentReader interface {
	FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error)
	ListAttachmentsByClient(ctx context.Context, clientID string) ([]domain.Attachment, error)
}

// AttachmentWriter defines write operations for attachment metadata
type AttachmentWriter interface {
	SaveAttachment(ctx context.Context, attachment domain.Attachment) error
	DeleteAttachment(ctx context.Context, attachmentID string) error
}

// AttachmentRepositoryFacade combines all attachment repository interfaces
type AttachmentRepositoryFacade interface {
	AttachmentReader
	AttachmentWriter
}
