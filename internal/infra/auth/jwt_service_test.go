package auth

import (
	"testing"

	"budgetai/config"
	"budgetai/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	companyID := uuid.New()
	departmentID := uuid.New()
	claims := &service.Claims{
		UserID:       uuid.New(),
		Roles:        []string{"admin"},
		CompanyID:    &companyID,
		DepartmentID: &departmentID,
	}

	accessToken, refreshToken, err := svc.GenerateTokens(claims)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	parsed, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, []string{"admin"}, parsed.Roles)
	require.NotNil(t, parsed.CompanyID)
	assert.Equal(t, companyID, *parsed.CompanyID)
	require.NotNil(t, parsed.DepartmentID)
	assert.Equal(t, departmentID, *parsed.DepartmentID)
}

func TestJWTService_RefreshTokenCarriesNoIdentityClaims(t *testing.T) {
	svc := newTestJWTService(t)

	companyID := uuid.New()
	claims := &service.Claims{
		UserID:    uuid.New(),
		Roles:     []string{"admin"},
		CompanyID: &companyID,
	}

	_, refreshToken, err := svc.GenerateTokens(claims)
	require.NoError(t, err)

	parsed, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Empty(t, parsed.Roles)
	assert.Nil(t, parsed.CompanyID)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, refreshToken, err := svc.GenerateTokens(&service.Claims{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_HashTokenDeterministic(t *testing.T) {
	svc := newTestJWTService(t)

	first := svc.HashToken("some-refresh-token")
	second := svc.HashToken("some-refresh-token")
	other := svc.HashToken("another-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	// Hex-encoded SHA-256 digest.
	assert.Len(t, first, 64)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
