package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	portsrepo "github.com/SscSPs/visa_office_app/internal/core/ports/repositories"
	"github.com/SscSPs/visa_office_app/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// now is the service clock; nil means time.Now in UTC.
	now func() time.Time
}

// Now returns the current time of the service clock.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
// Client-caused failures (validation, not found) are logged at Warn.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn(msg, args...)
		return
	}
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// withTx runs fn inside a transaction started by tm. fn's error rolls the transaction back.
func (s *BaseService) withTx(ctx context.Context, tm portsrepo.TransactionManager, fn func(tx pgx.Tx) error) error {
	tx, err := tm.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := tm.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tm.Commit(ctx, tx)
}

// ServiceOption configures the parts every service shares.
type ServiceOption func(*BaseService)

// WithClock replaces the service clock, mostly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

func (s *BaseService) apply(opts []ServiceOption) {
	for _, opt := range opts {
		opt(s)
	}
}
