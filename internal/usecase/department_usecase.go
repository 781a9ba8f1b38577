package usecase

import (
	"context"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateDepartmentInput defines the data required to create a department.
type CreateDepartmentInput struct {
	Name          string  `json:"name" validate:"required,max=100"`
	MonthlyBudget float64 `json:"monthlyBudget" validate:"gte=0"`
}

// UpdateDepartmentInput defines the data required to update a department.
type UpdateDepartmentInput struct {
	Name          string  `json:"name" validate:"required,max=100"`
	MonthlyBudget float64 `json:"monthlyBudget" validate:"gte=0"`
}

// DepartmentUsecase defines the interface for department management operations.
// All operations are scoped to the caller's company.
type DepartmentUsecase interface {
	List(ctx context.Context, companyID uuid.UUID) ([]*entity.Department, error)
	Create(ctx context.Context, companyID uuid.UUID, input *CreateDepartmentInput) (*entity.Department, error)
	Update(ctx context.Context, companyID, departmentID uuid.UUID, input *UpdateDepartmentInput) (*entity.Department, error)
	Delete(ctx context.Context, companyID, departmentID uuid.UUID) error
}
