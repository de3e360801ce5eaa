package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/utils"
	"github.com/google/uuid"
)

// TokenConfig holds what is needed to sign access tokens.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// authService verifies operator credentials and issues HS256 access tokens.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   TokenConfig
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens TokenConfig, opts ...ServiceOption) portssvc.AuthSvc {
	svc := &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(email)
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Login attempt for unknown email")
			return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Login attempt with wrong password", slog.String("user_id", user.UserID))
		return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, user.Email, string(user.Role), s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return token, user, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get profile", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		s.LogDebug(ctx, "Seed admin already present", slog.String("user_id", existing.UserID))
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up seed admin: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		AuditFields:  domain.NewAuditFields("system", s.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	s.LogInfo(ctx, "Seed admin created", slog.String("user_id", user.UserID), slog.String("email", email))
	return nil
}
