package handler

import (
	"net/http"

	"budgetai/internal/delivery/http/response"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/labstack/echo/v4"
)

// companyActionInput is the single onboarding payload; action selects between
// creating a company and joining one by code.
type companyActionInput struct {
	Action string `json:"action" validate:"required,oneof=create join"`

	usecase.CreateCompanyInput
	usecase.JoinCompanyInput
}

// CompanyHandler holds dependencies for company onboarding handlers.
type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

// NewCompanyHandler is the constructor for CompanyHandler, injected by Fx.
func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Onboard handles POST /api/company with action create|join.
func (h *CompanyHandler) Onboard(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var input companyActionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid company input")
	}

	switch input.Action {
	case "create":
		if err := c.Validate(&input.CreateCompanyInput); err != nil {
			return errors.WithStack(err)
		}

		company, err := h.uc.Create(c.Request().Context(), userID, &input.CreateCompanyInput)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, newCompanyView(company), "Company created successfully")
	case "join":
		if err := c.Validate(&input.JoinCompanyInput); err != nil {
			return errors.WithStack(err)
		}

		company, err := h.uc.Join(c.Request().Context(), userID, &input.JoinCompanyInput)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newCompanyView(company), "Company joined successfully")
	default:
		return response.BadRequest(c, "VALIDATION_FAILED", "action must be create or join")
	}
}

// Get returns the caller's company.
func (h *CompanyHandler) Get(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	company, err := h.uc.GetByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCompanyView(company), "Company retrieved successfully")
}

// JoinCodeQR streams the company join code as a PNG QR image.
func (h *CompanyHandler) JoinCodeQR(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	png, err := h.uc.JoinCodeQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
