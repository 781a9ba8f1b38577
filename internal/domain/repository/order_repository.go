package repository

import (
	"context"
	"errors"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations for orders.
type OrderRepository interface {
	// Create persists a new order with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves all orders of a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Update modifies status, payment status and tracking fields.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order and its line items.
	Delete(ctx context.Context, id uuid.UUID) error
}
