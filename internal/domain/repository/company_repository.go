package repository

import (
	"context"
	"errors"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is returned when no company matches the lookup.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the persistence operations for companies.
type CompanyRepository interface {
	// FindByID retrieves a single company by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// FindByJoinCode retrieves a company by its shareable join code.
	FindByJoinCode(ctx context.Context, joinCode string) (*entity.Company, error)

	// Create persists a new company.
	Create(ctx context.Context, company *entity.Company) error
}
