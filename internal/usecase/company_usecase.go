package usecase

import (
	"context"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCompanyInput defines the data required to create a company during onboarding.
type CreateCompanyInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Size     string `json:"size" validate:"required,oneof=1-10 11-50 51-200 200+"`
	Industry string `json:"industry" validate:"required,oneof=Tech Finance Healthcare Retail Other"`
}

// JoinCompanyInput defines the data required to join an existing company by code.
type JoinCompanyInput struct {
	JoinCode     string     `json:"joinCode" validate:"required"`
	DepartmentID *uuid.UUID `json:"departmentId"`
}

// CompanyUsecase defines the interface for company onboarding operations.
type CompanyUsecase interface {
	// Create sets up a new company owned by the caller and completes their onboarding.
	Create(ctx context.Context, userID uuid.UUID, input *CreateCompanyInput) (*entity.Company, error)

	// Join attaches the caller to the company behind the join code as an employee.
	Join(ctx context.Context, userID uuid.UUID, input *JoinCompanyInput) (*entity.Company, error)

	// GetByUser returns the caller's company.
	GetByUser(ctx context.Context, userID uuid.UUID) (*entity.Company, error)

	// JoinCodeQR renders the caller's company join code as a PNG QR image.
	JoinCodeQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
