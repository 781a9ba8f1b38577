package handler

import (
	"budgetai/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDFrom extracts the authenticated caller's id set by the auth middleware.
func userIDFrom(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// companyIDFrom extracts the caller's company id. It is absent until the
// caller completes onboarding (and until they log in again afterwards).
func companyIDFrom(c echo.Context) (uuid.UUID, bool) {
	companyID, ok := c.Get(middleware.ContextKeyCompanyID).(uuid.UUID)

	return companyID, ok
}
