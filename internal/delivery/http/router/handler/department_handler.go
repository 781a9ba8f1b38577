package handler

import (
	"net/http"

	"budgetai/internal/delivery/http/response"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DepartmentHandler holds dependencies for department handlers.
type DepartmentHandler struct {
	uc usecase.DepartmentUsecase
}

// NewDepartmentHandler is the constructor for DepartmentHandler, injected by Fx.
func NewDepartmentHandler(uc usecase.DepartmentUsecase) *DepartmentHandler {
	return &DepartmentHandler{uc: uc}
}

// List returns the departments of the caller's company.
func (h *DepartmentHandler) List(c echo.Context) error {
	companyID, ok := companyIDFrom(c)
	if !ok {
		return response.NotFound(c, "COMPANY_NOT_FOUND", "No company on token; complete onboarding and log in again")
	}

	departments, err := h.uc.List(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDepartmentViews(departments), "Departments retrieved successfully")
}

// Create adds a department to the caller's company.
func (h *DepartmentHandler) Create(c echo.Context) error {
	companyID, ok := companyIDFrom(c)
	if !ok {
		return response.NotFound(c, "COMPANY_NOT_FOUND", "No company on token; complete onboarding and log in again")
	}

	var input usecase.CreateDepartmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid department input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	department, err := h.uc.Create(c.Request().Context(), companyID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newDepartmentView(department), "Department created successfully")
}

// Update renames a department or changes its monthly budget.
func (h *DepartmentHandler) Update(c echo.Context) error {
	companyID, ok := companyIDFrom(c)
	if !ok {
		return response.NotFound(c, "COMPANY_NOT_FOUND", "No company on token; complete onboarding and log in again")
	}

	departmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid department id")
	}

	var input usecase.UpdateDepartmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid department input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	department, err := h.uc.Update(c.Request().Context(), companyID, departmentID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDepartmentView(department), "Department updated successfully")
}

// Delete removes a department with no referencing purchase requests.
func (h *DepartmentHandler) Delete(c echo.Context) error {
	companyID, ok := companyIDFrom(c)
	if !ok {
		return response.NotFound(c, "COMPANY_NOT_FOUND", "No company on token; complete onboarding and log in again")
	}

	departmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid department id")
	}

	if err := h.uc.Delete(c.Request().Context(), companyID, departmentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Department deleted successfully")
}
