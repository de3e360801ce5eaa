package mapping

import (
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/models"
)

// ToModelClient converts a domain Client to a model Client (scalar columns only)
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:         d.ClientID,
		FullName:         d.FullName,
		Email:            d.Email,
		Address:          d.Address,
		Nationality:      d.Nationality,
		DateOfBirth:      d.DateOfBirth,
		PassportNumber:   d.PassportNumber,
		PassportExpiry:   d.PassportExpiry,
		VisaType:         string(d.VisaType),
		Destination:      d.Destination,
		ClientType:       string(d.ClientType),
		Status:           string(d.Status),
		IsMinor:          d.IsMinor,
		GuardianName:     d.GuardianName,
		GuardianPhone:    d.GuardianPhone,
		GuardianRelation: d.GuardianRelation,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client with empty child collections
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:         m.ClientID,
		FullName:         m.FullName,
		Email:            m.Email,
		Address:          m.Address,
		Nationality:      m.Nationality,
		DateOfBirth:      m.DateOfBirth,
		PassportNumber:   m.PassportNumber,
		PassportExpiry:   m.PassportExpiry,
		VisaType:         domain.VisaType(m.VisaType),
		Destination:      m.Destination,
		ClientType:       domain.ClientType(m.ClientType),
		Status:           domain.ClientStatus(m.Status),
		IsMinor:          m.IsMinor,
		GuardianName:     m.GuardianName,
		GuardianPhone:    m.GuardianPhone,
		GuardianRelation: m.GuardianRelation,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		PhoneNumbers:     []domain.PhoneNumber{},
		Employers:        []domain.Employer{},
		FamilyMembers:    []domain.FamilyMember{},
		Attachments:      []domain.Attachment{},
	}
}

// ToDomainPhoneNumber converts a model PhoneNumber
func ToDomainPhoneNumber(m models.PhoneNumber) domain.PhoneNumber {
	return domain.PhoneNumber{PhoneNumberID: m.PhoneNumberID, ClientID: m.ClientID, Number: m.Number, Label: m.Label}
}

// ToDomainEmployer converts a model Employer
func ToDomainEmployer(m models.Employer) domain.Employer {
	return domain.Employer{
		EmployerID: m.EmployerID,
		ClientID:   m.ClientID,
		Name:       m.Name,
		Position:   m.Position,
		Phone:      m.Phone,
		Address:    m.Address,
	}
}

// ToDomainFamilyMember converts a model FamilyMember
func ToDomainFamilyMember(m models.FamilyMember) domain.FamilyMember {
	return domain.FamilyMember{
		FamilyMemberID: m.FamilyMemberID,
		ClientID:       m.ClientID,
		FullName:       m.FullName,
		Relationship:   m.Relationship,
		PassportNumber: m.PassportNumber,
		DateOfBirth:    m.DateOfBirth,
	}
}

// ToModelAttachment converts a domain Attachment
func ToModelAttachment(d domain.Attachment) models.Attachment {
	return models.Attachment{
		AttachmentID:   d.AttachmentID,
		ClientID:       d.ClientID,
		AttachmentType: string(d.AttachmentType),
		OriginalName:   d.OriginalName,
		StorageKey:     d.StorageKey,
		MimeType:       d.MimeType,
		Size:           d.Size,
		UploadedBy:     d.UploadedBy,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainAttachment converts a model Attachment
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID:   m.AttachmentID,
		ClientID:       m.ClientID,
		AttachmentType: domain.AttachmentType(m.AttachmentType),
		OriginalName:   m.OriginalName,
		StorageKey:     m.StorageKey,
		MimeType:       m.MimeType,
		Size:           m.Size,
		UploadedBy:     m.UploadedBy,
		CreatedAt:      m.CreatedAt,
	}
}
