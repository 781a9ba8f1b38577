package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetai/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Integration(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestUserHandler_Signup_RejectsMalformedJSON(t *testing.T) {
	// Binding fails before the usecase is touched, so no dependencies are needed.
	handler := &UserHandler{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Signup(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Me_RequiresAuthenticatedContext(t *testing.T) {
	handler := &UserHandler{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestContextHelpers_ReadIdentitySetByMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	userID := uuid.New()
	companyID := uuid.New()
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyCompanyID, companyID)

	gotUser, ok := userIDFrom(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotUser)

	gotCompany, ok := companyIDFrom(c)
	require.True(t, ok)
	assert.Equal(t, companyID, gotCompany)
}

func TestContextHelpers_MissingIdentity(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := userIDFrom(c)
	assert.False(t, ok)

	_, ok = companyIDFrom(c)
	assert.False(t, ok)
}
