package models

import "time"

// Client is a row of the clients table.
type Client struct {
	ClientID         string     `db:"client_id"`
	FullName         string     `db:"full_name"`
	Email            string     `db:"email"`
	Address          string     `db:"address"`
	Nationality      string     `db:"nationality"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	PassportNumber   string     `db:"passport_number"`
	PassportExpiry   *time.Time `db:"passport_expiry"`
	VisaType         string     `db:"visa_type"`
	Destination      string     `db:"destination"`
	ClientType       string     `db:"client_type"`
	Status           string     `db:"status"`
	IsMinor          bool       `db:"is_minor"`
	GuardianName     string     `db:"guardian_name"`
	GuardianPhone    string     `db:"guardian_phone"`
	GuardianRelation string     `db:"guardian_relation"`
	Notes            string     `db:"notes"`
	AuditFields
}

// PhoneNumber is a row of the phone_numbers table.
type PhoneNumber struct {
	PhoneNumberID string `db:"phone_number_id"`
	ClientID      string `db:"client_id"`
	Number        string `db:"number"`
	Label         string `db:"label"`
	SortOrder     int    `db:"sort_order"`
}

// Employer is a row of the employers table.
type Employer struct {
	EmployerID string `db:"employer_id"`
	ClientID   string `db:"client_id"`
	Name       string `db:"name"`
	Position   string `db:"position"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	SortOrder  int    `db:"sort_order"`
}

// FamilyMember is a row of the family_members table.
type FamilyMember struct {
	FamilyMemberID string     `db:"family_member_id"`
	ClientID       string     `db:"client_id"`
	FullName       string     `db:"full_name"`
	Relationship   string     `db:"relationship"`
	PassportNumber string     `db:"passport_number"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	SortOrder      int        `db:"sort_order"`
}

// Attachment is a row of the attachments table.
type Attachment struct {
	AttachmentID   string    `db:"attachment_id"`
	ClientID       string    `db:"client_id"`
	AttachmentType string    `db:"attachment_type"`
	OriginalName   string    `db:"original_name"`
	StorageKey     string    `db:"storage_key"`
	MimeType       string    `db:"mime_type"`
	Size           int64     `db:"size"`
	UploadedBy     string    `db:"uploaded_by"`
	CreatedAt      time.Time `db:"created_at"`
}
