package services

import (
	"context"
	"io"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
)

// UploadFile describes an uploaded file. Content is read at most once.
type UploadFile struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// AttachmentSvcFacade manages client documents and their blobs
type AttachmentSvcFacade interface {
	Upload(ctx context.Context, clientID string, attachmentType domain.AttachmentType, file UploadFile, userID string) (*domain.Attachment, error)
	ListClientAttachments(ctx context.Context, clientID string) ([]domain.Attachment, error)
	GetAttachment(ctx context.Context, attachmentID string) (*domain.Attachment, error)

	// Open returns the attachment metadata with a reader over its content. Callers close the reader.
	Open(ctx context.Context, attachmentID string) (*domain.Attachment, io.ReadCloser, error)
	Delete(ctx context.Context, attachmentID string) error
}

// BlobStore persists attachment content under opaque keys.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
