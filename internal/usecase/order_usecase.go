package usecase

import (
	"context"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput references a catalog product and a quantity. Price and title
// snapshots are taken server-side at creation time.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string           `json:"shippingAddress" validate:"required"`
}

// UpdateOrderInput updates fulfillment fields. Empty strings leave a field unchanged.
type UpdateOrderInput struct {
	Status         string `json:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled refunded"`
	PaymentStatus  string `json:"paymentStatus" validate:"omitempty,oneof=pending completed failed refunded"`
	TrackingNumber string `json:"trackingNumber"`
}

// OrderUsecase defines the interface for order operations. Every operation is
// scoped to the owning user; lookups for other users' orders return not-found.
type OrderUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	Get(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, userID, orderID uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)
	Delete(ctx context.Context, userID, orderID uuid.UUID) error
}
