package handler

import (
	"net/http"

	"budgetai/internal/delivery/http/response"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestHandler holds dependencies for purchase-request handlers.
type RequestHandler struct {
	uc usecase.RequestUsecase
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Submit creates a pending purchase request for the caller.
func (h *RequestHandler) Submit(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var input usecase.SubmitRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid request input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Submit(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &submitRequestView{
		Request:         newRequestView(output.Request),
		RemainingBudget: output.RemainingBudget,
	}, "Purchase request submitted successfully")
}

// ListMine returns the caller's requests, newest submission first.
func (h *RequestHandler) ListMine(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	requests, err := h.uc.ListForEmployee(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRequestViews(requests), "Purchase requests retrieved successfully")
}

// ListCompany returns the company's requests with optional filters.
func (h *RequestHandler) ListCompany(c echo.Context) error {
	companyID, ok := companyIDFrom(c)
	if !ok {
		return response.NotFound(c, "COMPANY_NOT_FOUND", "No company on token; complete onboarding and log in again")
	}

	input := usecase.ListCompanyRequestsInput{
		DepartmentID: c.QueryParam("departmentId"),
		Status:       c.QueryParam("status"),
	}

	requests, err := h.uc.ListForCompany(c.Request().Context(), companyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRequestViews(requests), "Purchase requests retrieved successfully")
}

// Resolve transitions a pending request to approved or denied.
func (h *RequestHandler) Resolve(c echo.Context) error {
	companyID, ok := companyIDFrom(c)
	if !ok {
		return response.NotFound(c, "COMPANY_NOT_FOUND", "No company on token; complete onboarding and log in again")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid request id")
	}

	var input usecase.ResolveRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid resolution input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.Resolve(c.Request().Context(), companyID, requestID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRequestView(request), "Purchase request resolved successfully")
}
