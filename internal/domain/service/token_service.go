package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the identity carried by an access token. Company and department
// references are nil until the user completes onboarding.
type Claims struct {
	UserID       uuid.UUID
	Roles        []string
	CompanyID    *uuid.UUID
	DepartmentID *uuid.UUID
	Type         string // "access" or "refresh"
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(claims *Claims) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hex-encoded SHA-256 digest of a raw token,
	// suitable for storage and lookup without persisting the token itself.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
