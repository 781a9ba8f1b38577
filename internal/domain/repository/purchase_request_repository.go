package repository

import (
	"context"
	"errors"
	"time"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when no purchase request matches the lookup.
var ErrRequestNotFound = errors.New("purchase request not found")

// RequestFilter narrows an admin listing. Nil fields mean "no filter"
// (the API's "all" value maps to nil).
type RequestFilter struct {
	DepartmentID *uuid.UUID
	Status       *entity.RequestStatus
}

// PurchaseRequestRepository defines the persistence operations for purchase requests.
type PurchaseRequestRepository interface {
	// Create persists a new purchase request.
	Create(ctx context.Context, request *entity.PurchaseRequest) error

	// FindByID retrieves a single purchase request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRequest, error)

	// FindByUser retrieves all requests owned by an employee, newest submittedAt first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseRequest, error)

	// FindByCompany retrieves requests across all of a company's departments,
	// optionally narrowed by filter, newest submittedAt first.
	FindByCompany(ctx context.Context, companyID uuid.UUID, filter RequestFilter) ([]*entity.PurchaseRequest, error)

	// ResolveIfPending transitions the request out of pending in a single
	// conditional UPDATE (WHERE status = 'pending'). It returns false when the
	// request was already resolved, so a second resolution can never
	// double-count the ledger.
	ResolveIfPending(ctx context.Context, id uuid.UUID, status entity.RequestStatus, reason string, processedAt time.Time) (bool, error)

	// CountByDepartment returns how many requests reference a department.
	CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error)
}
