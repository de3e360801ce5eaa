package dto

import (
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
)

// UploadAttachmentForm is the non-file part of the multipart upload.
type UploadAttachmentForm struct {
	AttachmentType domain.AttachmentType `form:"attachmentType" validate:"required,attachment_type"`
}

// Validate checks the form values.
func (f UploadAttachmentForm) Validate() error {
	return validateStruct(f)
}

// AttachmentResponse defines the data returned for an attachment.
type AttachmentResponse struct {
	AttachmentID   string                `json:"attachmentID"`
	ClientID       string                `json:"clientID"`
	AttachmentType domain.AttachmentType `json:"attachmentType"`
	OriginalName   string                `json:"originalName"`
	MimeType       string                `json:"mimeType"`
	Size           int64                 `json:"size"`
	UploadedBy     string                `json:"uploadedBy"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ToAttachmentResponse converts a domain.Attachment to AttachmentResponse DTO
func ToAttachmentResponse(a *domain.Attachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID:   a.AttachmentID,
		ClientID:       a.ClientID,
		AttachmentType: a.AttachmentType,
		OriginalName:   a.OriginalName,
		MimeType:       a.MimeType,
		Size:           a.Size,
		UploadedBy:     a.UploadedBy,
		CreatedAt:      a.CreatedAt,
	}
}

// ToAttachmentResponses converts a slice of domain.Attachment.
func ToAttachmentResponses(attachments []domain.Attachment) []AttachmentResponse {
	res := make([]AttachmentResponse, len(attachments))
	for i := range attachments {
		res[i] = ToAttachmentResponse(&attachments[i])
	}
	return res
}
