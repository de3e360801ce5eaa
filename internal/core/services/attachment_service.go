package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// extensionsByMimeType lists the file extensions accepted for each allowed MIME type.
var extensionsByMimeType = map[string][]string{
	"application/pdf": {".pdf"},
	"image/jpeg":      {".jpg", ".jpeg"},
	"image/jpg":       {".jpg", ".jpeg"},
	"image/png":       {".png"},
}

type attachmentService struct {
	BaseService
	attachmentRepo   portsrepo.AttachmentRepositoryFacade
	clientRepo       portsrepo.ClientReader
	store            portssvc.BlobStore
	maxBytes         int64
	allowedMimeTypes []string
}

// NewAttachmentService creates the attachment service. Uploads larger than maxBytes or whose
// detected type is not in allowedMimeTypes are rejected.
func NewAttachmentService(
	attachmentRepo portsrepo.AttachmentRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	store portssvc.BlobStore,
	maxBytes int64,
	allowedMimeTypes []string,
	opts ...ServiceOption,
) portssvc.AttachmentSvcFacade {
	svc := &attachmentService{
		attachmentRepo:   attachmentRepo,
		clientRepo:       clientRepo,
		store:            store,
		maxBytes:         maxBytes,
		allowedMimeTypes: allowedMimeTypes,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)

// checkType returns the canonical MIME type of content when both it and the file extension are allowed.
func (s *attachmentService) checkType(filename string, content []byte) (string, error) {
	detected := mimetype.Detect(content)
	ext := strings.ToLower(filepath.Ext(filename))

	for _, allowed := range s.allowedMimeTypes {
		if !detected.Is(allowed) {
			continue
		}
		for _, e := range extensionsByMimeType[allowed] {
			if e == ext {
				return detected.String(), nil
			}
		}
		return "", apperrors.Validationf("file extension %q does not match its content (%s)", ext, detected.String())
	}
	return "", apperrors.Validationf("file type %s is not allowed; accepted types: %s", detected.String(), strings.Join(s.allowedMimeTypes, ", "))
}

func (s *attachmentService) Upload(ctx context.Context, clientID string, attachmentType domain.AttachmentType, file portssvc.UploadFile, userID string) (*domain.Attachment, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to find client for upload", slog.String("client_id", clientID))
		return nil, err
	}
	if file.Size > s.maxBytes {
		err := apperrors.Validationf("file exceeds the maximum size of %d bytes", s.maxBytes)
		s.LogError(ctx, err, "Upload rejected", slog.String("client_id", clientID), slog.Int64("size", file.Size))
		return nil, err
	}

	content, err := io.ReadAll(io.LimitReader(file.Content, s.maxBytes+1))
	if err != nil {
		s.LogError(ctx, err, "Failed to read upload", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > s.maxBytes {
		err := apperrors.Validationf("file exceeds the maximum size of %d bytes", s.maxBytes)
		s.LogError(ctx, err, "Upload rejected", slog.String("client_id", clientID))
		return nil, err
	}
	if len(content) == 0 {
		return nil, apperrors.Validationf("file is empty")
	}

	mimeType, err := s.checkType(file.Filename, content)
	if err != nil {
		s.LogError(ctx, err, "Upload rejected", slog.String("client_id", clientID), slog.String("filename", file.Filename))
		return nil, err
	}

	attachmentID := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(file.Filename))
	attachment := domain.Attachment{
		AttachmentID:   attachmentID,
		ClientID:       clientID,
		AttachmentType: attachmentType,
		OriginalName:   filepath.Base(file.Filename),
		StorageKey:     fmt.Sprintf("clients/%s/%s%s", clientID, attachmentID, ext),
		MimeType:       mimeType,
		Size:           int64(len(content)),
		UploadedBy:     userID,
		CreatedAt:      s.Now(),
	}

	if err := s.store.Put(ctx, attachment.StorageKey, bytes.NewReader(content), attachment.Size, mimeType); err != nil {
		s.LogError(ctx, err, "Failed to store attachment content", slog.String("storage_key", attachment.StorageKey))
		return nil, err
	}
	if err := s.attachmentRepo.SaveAttachment(ctx, attachment); err != nil {
		s.LogError(ctx, err, "Failed to save attachment", slog.String("attachment_id", attachmentID))
		if delErr := s.store.Delete(ctx, attachment.StorageKey); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove orphaned attachment content", slog.String("storage_key", attachment.StorageKey))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Attachment uploaded",
		slog.String("attachment_id", attachmentID),
		slog.String("client_id", clientID),
		slog.String("mime_type", mimeType),
		slog.Int64("size", attachment.Size))
	return &attachment, nil
}

func (s *attachmentService) ListClientAttachments(ctx context.Context, clientID string) ([]domain.Attachment, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, err
	}
	attachments, err := s.attachmentRepo.ListAttachmentsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list attachments", slog.String("client_id", clientID))
		return nil, err
	}
	return attachments, nil
}

func (s *attachmentService) GetAttachment(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get attachment", slog.String("attachment_id", attachmentID))
		return nil, err
	}
	return attachment, nil
}

func (s *attachmentService) Open(ctx context.Context, attachmentID string) (*domain.Attachment, io.ReadCloser, error) {
	attachment, err := s.GetAttachment(ctx, attachmentID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Open(ctx, attachment.StorageKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to open attachment content", slog.String("attachment_id", attachmentID))
		return nil, nil, err
	}
	return attachment, rc, nil
}

func (s *attachmentService) Delete(ctx context.Context, attachmentID string) error {
	attachment, err := s.GetAttachment(ctx, attachmentID)
	if err != nil {
		return err
	}

	// A missing or unremovable blob never blocks deleting the record.
	if err := s.store.Delete(ctx, attachment.StorageKey); err != nil {
		s.LogError(ctx, err, "Failed to delete attachment content",
			slog.String("attachment_id", attachmentID),
			slog.String("storage_key", attachment.StorageKey))
	}

	if err := s.attachmentRepo.DeleteAttachment(ctx, attachmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete attachment", slog.String("attachment_id", attachmentID))
		return err
	}
	s.LogInfo(ctx, "Attachment deleted", slog.String("attachment_id", attachmentID))
	return nil
}
