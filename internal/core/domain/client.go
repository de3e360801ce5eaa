package domain

import "time"

// ClientType classifies how a client was onboarded and which fields are mandatory.
type ClientType string

const (
	ClientIndividual ClientType = "INDIVIDUAL"
	ClientFamily     ClientType = "FAMILY"
	ClientGroup      ClientType = "GROUP"
	ClientPhoneCall  ClientType = "PHONE_CALL"
)

// ClientStatus is the workflow state of a client.
type ClientStatus string

const (
	ClientStatusNew       ClientStatus = "NOUVEAU"
	ClientStatusActive    ClientStatus = "EN_COURS"
	ClientStatusOnHold    ClientStatus = "EN_ATTENTE"
	ClientStatusDone      ClientStatus = "TERMINE"
	ClientStatusCancelled ClientStatus = "ANNULE"
)

// VisaType is the kind of visa a client or dossier targets.
type VisaType string

const (
	VisaTourism  VisaType = "TOURISME"
	VisaBusiness VisaType = "AFFAIRES"
	VisaStudy    VisaType = "ETUDES"
	VisaWork     VisaType = "TRAVAIL"
	VisaFamily   VisaType = "FAMILIAL"
	VisaTransit  VisaType = "TRANSIT"
)

// Client is the central record of the back office. Children reference the client by ClientID.
type Client struct {
	ClientID         string       `json:"clientID"`
	FullName         string       `json:"fullName"`
	Email            string       `json:"email"`
	Address          string       `json:"address"`
	Nationality      string       `json:"nationality"`
	DateOfBirth      *time.Time   `json:"dateOfBirth,omitempty"`
	PassportNumber   string       `json:"passportNumber"`
	PassportExpiry   *time.Time   `json:"passportExpiry,omitempty"`
	VisaType         VisaType     `json:"visaType"`
	Destination      string       `json:"destination"`
	ClientType       ClientType   `json:"clientType"`
	Status           ClientStatus `json:"status"`
	IsMinor          bool         `json:"isMinor"`
	GuardianName     string       `json:"guardianName"`
	GuardianPhone    string       `json:"guardianPhone"`
	GuardianRelation string       `json:"guardianRelation"`
	Notes            string       `json:"notes"`
	AuditFields

	PhoneNumbers  []PhoneNumber  `json:"phoneNumbers"`
	Employers     []Employer     `json:"employers"`
	FamilyMembers []FamilyMember `json:"familyMembers"`
	Attachments   []Attachment   `json:"attachments"`
	Dossiers      []Dossier      `json:"dossiers,omitempty"`
}

// RequiresPassport reports whether a passport number is mandatory for this client type.
func (t ClientType) RequiresPassport() bool {
	return t != ClientPhoneCall
}

// RequiresFamilyMembers reports whether at least one family member is mandatory.
func (t ClientType) RequiresFamilyMembers() bool {
	return t == ClientFamily || t == ClientGroup
}

// PhoneNumber is a contact number owned by a client.
type PhoneNumber struct {
	PhoneNumberID string `json:"phoneNumberID"`
	ClientID      string `json:"clientID"`
	Number        string `json:"number"`
	Label         string `json:"label"`
}

// Employer is an employment record owned by a client.
type Employer struct {
	EmployerID string `json:"employerID"`
	ClientID   string `json:"clientID"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// FamilyMember is a travelling companion of a FAMILY or GROUP client.
type FamilyMember struct {
	FamilyMemberID string     `json:"familyMemberID"`
	ClientID       string     `json:"clientID"`
	FullName       string     `json:"fullName"`
	Relationship   string     `json:"relationship"`
	PassportNumber string     `json:"passportNumber"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
}

// ClientFilter narrows a client listing. Zero values mean "no filter".
type ClientFilter struct {
	Status     ClientStatus
	ClientType ClientType
	Search     string
	Limit      int
	Offset     int
}
