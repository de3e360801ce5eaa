package domain

import "time"

// AttachmentType names the kind of document a client supplied.
type AttachmentType string

const (
	AttachmentPassport      AttachmentType = "PASSEPORT"
	AttachmentPhoto         AttachmentType = "PHOTO"
	AttachmentBankStatement AttachmentType = "RELEVE_BANCAIRE"
	AttachmentEmployment    AttachmentType = "ATTESTATION_TRAVAIL"
	AttachmentHotelBooking  AttachmentType = "RESERVATION_HOTEL"
	AttachmentFlightTicket  AttachmentType = "BILLET_AVION"
	AttachmentInsurance     AttachmentType = "ASSURANCE"
	AttachmentOther         AttachmentType = "AUTRE"
)

// Attachment is the metadata of a document whose bytes live in a blob store under StorageKey.
type Attachment struct {
	AttachmentID   string         `json:"attachmentID"`
	ClientID       string         `json:"clientID"`
	AttachmentType AttachmentType `json:"attachmentType"`
	OriginalName   string         `json:"originalName"`
	StorageKey     string         `json:"-"`
	MimeType       string         `json:"mimeType"`
	Size           int64          `json:"size"`
	UploadedBy     string         `json:"uploadedBy"`
	CreatedAt      time.Time      `json:"createdAt"`
}
