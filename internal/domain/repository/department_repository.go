package repository

import (
	"context"
	"errors"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDepartmentNotFound is returned when no department matches the lookup.
var ErrDepartmentNotFound = errors.New("department not found")

// DepartmentRepository defines the persistence operations for departments.
//
// The two increment methods are the only writers of the CurrentSpent and
// EmployeeCount accumulators. Both must execute as a single UPDATE against
// the stored row so concurrent calls serialize at the storage layer and
// cannot lose updates.
type DepartmentRepository interface {
	// FindByID retrieves a single department by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Department, error)

	// FindByCompany retrieves all departments of a company, name-ascending.
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Department, error)

	// Create persists a new department.
	Create(ctx context.Context, department *entity.Department) error

	// Update modifies name and monthly budget of an existing department.
	Update(ctx context.Context, department *entity.Department) error

	// Delete removes a department.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementSpent atomically adds amount to the department's current spend.
	IncrementSpent(ctx context.Context, id uuid.UUID, amount float64) error

	// IncrementEmployeeCount atomically adds delta to the employee counter.
	IncrementEmployeeCount(ctx context.Context, id uuid.UUID, delta int) error
}
