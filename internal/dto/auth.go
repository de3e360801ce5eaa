package dto

import "github.com/SscSPs/visa_office_app/internal/core/domain"

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the credentials are present.
func (r LoginRequest) Validate() error {
	return validateStruct(r)
}

// UserSummary is the user projection returned by login.
type UserSummary struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserSummary `json:"user"`
}

// UserResponse is returned by the profile endpoint.
type UserResponse struct {
	UserID string          `json:"userID"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Role   domain.UserRole `json:"role"`
}

// ToUserSummary converts a domain.User to the login projection.
func ToUserSummary(u *domain.User) UserSummary {
	return UserSummary{ID: u.UserID, Email: u.Email, Role: u.Role}
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{UserID: u.UserID, Email: u.Email, Name: u.Name, Role: u.Role}
}
