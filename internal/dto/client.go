package dto

import (
	"time"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/SscSPs/visa_office_app/internal/utils/pagination"
)

// PhoneNumberInput is a phone number supplied on client create/update.
type PhoneNumberInput struct {
	Number string `json:"number" validate:"required,max=50"`
	Label  string `json:"label" validate:"max=50"`
}

// EmployerInput is an employer supplied on client create/update.
type EmployerInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// FamilyMemberInput is a family member supplied on client create/update.
type FamilyMemberInput struct {
	FullName       string `json:"fullName" validate:"required,max=200"`
	Relationship   string `json:"relationship" validate:"required,max=100"`
	PassportNumber string `json:"passportNumber"`
	DateOfBirth    *Date  `json:"dateOfBirth"`
}

// Validate checks a standalone family member payload.
func (r FamilyMemberInput) Validate() error {
	return validateStruct(r)
}

// CreateClientRequest defines the data needed to create a new client.
// Type-dependent rules (passport, family members, guardian) are enforced by the client service.
type CreateClientRequest struct {
	FullName         string              `json:"fullName" validate:"required,max=200"`
	Email            string              `json:"email" validate:"omitempty,email"`
	Address          string              `json:"address"`
	Nationality      string              `json:"nationality"`
	DateOfBirth      *Date               `json:"dateOfBirth"`
	PassportNumber   string              `json:"passportNumber" validate:"max=50"`
	PassportExpiry   *Date               `json:"passportExpiry"`
	VisaType         domain.VisaType     `json:"visaType" validate:"omitempty,visa_type"`
	Destination      string              `json:"destination"`
	ClientType       domain.ClientType   `json:"clientType" validate:"required,client_type"`
	Status           domain.ClientStatus `json:"status" validate:"omitempty,client_status"`
	IsMinor          bool                `json:"isMinor"`
	GuardianName     string              `json:"guardianName"`
	GuardianPhone    string              `json:"guardianPhone"`
	GuardianRelation string              `json:"guardianRelation"`
	Notes            string              `json:"notes"`
	PhoneNumbers     []PhoneNumberInput  `json:"phoneNumbers" validate:"dive"`
	Employers        []EmployerInput     `json:"employers" validate:"dive"`
	FamilyMembers    []FamilyMemberInput `json:"familyMembers" validate:"dive"`
}

// Validate checks the request shape.
func (r CreateClientRequest) Validate() error {
	return validateStruct(r)
}

// UpdateClientRequest defines the data allowed for updating a client.
// Pointers distinguish omitted fields from zero values. A non-nil collection replaces the stored one.
type UpdateClientRequest struct {
	FullName         *string              `json:"fullName" validate:"omitempty,min=1,max=200"`
	Email            *string              `json:"email" validate:"omitempty,email"`
	Address          *string              `json:"address"`
	Nationality      *string              `json:"nationality"`
	DateOfBirth      *Date                `json:"dateOfBirth"`
	PassportNumber   *string              `json:"passportNumber" validate:"omitempty,max=50"`
	PassportExpiry   *Date                `json:"passportExpiry"`
	VisaType         *domain.VisaType     `json:"visaType" validate:"omitempty,visa_type"`
	Destination      *string              `json:"destination"`
	ClientType       *domain.ClientType   `json:"clientType" validate:"omitempty,client_type"`
	Status           *domain.ClientStatus `json:"status" validate:"omitempty,client_status"`
	IsMinor          *bool                `json:"isMinor"`
	GuardianName     *string              `json:"guardianName"`
	GuardianPhone    *string              `json:"guardianPhone"`
	GuardianRelation *string              `json:"guardianRelation"`
	Notes            *string              `json:"notes"`
	PhoneNumbers     *[]PhoneNumberInput  `json:"phoneNumbers"`
	Employers        *[]EmployerInput     `json:"employers"`
	FamilyMembers    *[]FamilyMemberInput `json:"familyMembers"`
}

// Validate checks the request shape, including every element of supplied collections.
func (r UpdateClientRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.PhoneNumbers != nil {
		for _, p := range *r.PhoneNumbers {
			if err := validateStruct(p); err != nil {
				return err
			}
		}
	}
	if r.Employers != nil {
		for _, e := range *r.Employers {
			if err := validateStruct(e); err != nil {
				return err
			}
		}
	}
	if r.FamilyMembers != nil {
		for _, m := range *r.FamilyMembers {
			if err := validateStruct(m); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Page       int                 `form:"page,default=1"`
	Limit      int                 `form:"limit,default=10"`
	Search     string              `form:"search"`
	Status     domain.ClientStatus `form:"status" validate:"omitempty,client_status"`
	ClientType domain.ClientType   `form:"clientType" validate:"omitempty,client_type"`
}

// Validate checks the query values.
func (p ListClientsParams) Validate() error {
	return validateStruct(p)
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID         string                `json:"clientID"`
	FullName         string                `json:"fullName"`
	Email            string                `json:"email"`
	Address          string                `json:"address"`
	Nationality      string                `json:"nationality"`
	DateOfBirth      *time.Time            `json:"dateOfBirth"`
	PassportNumber   string                `json:"passportNumber"`
	PassportExpiry   *time.Time            `json:"passportExpiry"`
	VisaType         domain.VisaType       `json:"visaType"`
	Destination      string                `json:"destination"`
	ClientType       domain.ClientType     `json:"clientType"`
	Status           domain.ClientStatus   `json:"status"`
	IsMinor          bool                  `json:"isMinor"`
	GuardianName     string                `json:"guardianName"`
	GuardianPhone    string                `json:"guardianPhone"`
	GuardianRelation string                `json:"guardianRelation"`
	Notes            string                `json:"notes"`
	PhoneNumbers     []domain.PhoneNumber  `json:"phoneNumbers"`
	Employers        []domain.Employer     `json:"employers"`
	FamilyMembers    []domain.FamilyMember `json:"familyMembers"`
	Attachments      []AttachmentResponse  `json:"attachments"`
	Dossiers         []DossierResponse     `json:"dossiers,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	CreatedBy        string                `json:"createdBy"`
	LastUpdatedAt    time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy    string                `json:"lastUpdatedBy"`
}

// ListClientsResponse wraps one page of clients.
type ListClientsResponse struct {
	Data []ClientResponse `json:"data"`
	Meta pagination.Meta  `json:"meta"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	res := ClientResponse{
		ClientID:         c.ClientID,
		FullName:         c.FullName,
		Email:            c.Email,
		Address:          c.Address,
		Nationality:      c.Nationality,
		DateOfBirth:      c.DateOfBirth,
		PassportNumber:   c.PassportNumber,
		PassportExpiry:   c.PassportExpiry,
		VisaType:         c.VisaType,
		Destination:      c.Destination,
		ClientType:       c.ClientType,
		Status:           c.Status,
		IsMinor:          c.IsMinor,
		GuardianName:     c.GuardianName,
		GuardianPhone:    c.GuardianPhone,
		GuardianRelation: c.GuardianRelation,
		Notes:            c.Notes,
		PhoneNumbers:     nonNil(c.PhoneNumbers),
		Employers:        nonNil(c.Employers),
		FamilyMembers:    nonNil(c.FamilyMembers),
		Attachments:      ToAttachmentResponses(c.Attachments),
		CreatedAt:        c.CreatedAt,
		CreatedBy:        c.CreatedBy,
		LastUpdatedAt:    c.LastUpdatedAt,
		LastUpdatedBy:    c.LastUpdatedBy,
	}
	if c.Dossiers != nil {
		res.Dossiers = ToDossierResponses(c.Dossiers)
	}
	return res
}

// ToListClientsResponse builds the paginated listing payload.
func ToListClientsResponse(clients []domain.Client, meta pagination.Meta) ListClientsResponse {
	data := make([]ClientResponse, len(clients))
	for i := range clients {
		data[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Data: data, Meta: meta}
}

// nonNil keeps empty collections serialised as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
