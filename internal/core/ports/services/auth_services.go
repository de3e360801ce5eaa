package services

import (
	"context"

	"github.com/SscSPs/visa_office_app/internal/core/domain"
)

// AuthSvc authenticates operators and issues access tokens.
type AuthSvc interface {
	// Login verifies credentials and returns a signed access token with the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	GetProfile(ctx context.Context, userID string) (*domain.User, error)

	// EnsureAdmin creates an ADMIN user with email when none exists. It is idempotent.
	EnsureAdmin(ctx context.Context, email, password string) error
}
