package repository

import (
	"context"
	"errors"
	"time"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no refresh token matches the lookup.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the persistence operations for login sessions.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a refresh token by its SHA-256 hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash removes a single session (logout).
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions that expired before the cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) error

	// CountByUser returns the number of active sessions for a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
