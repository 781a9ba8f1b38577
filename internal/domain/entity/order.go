package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	return slices.Contains([]OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded,
	}, s)
}

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	return slices.Contains([]PaymentStatus{
		PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded,
	}, s)
}

// OrderItem snapshots a product at purchase time so later catalog edits do not
// rewrite order history.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Title     string  // Title snapshot at purchase time.
	Image     string  // Primary image snapshot.
	Quantity  int     // Positive.
	UnitPrice float64 // Price snapshot at purchase time.
}

// Order is a ShopAI purchase, always scoped to the user who placed it.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Items           []OrderItem
	Total           float64 // Computed server-side from item snapshots.
	Currency        Currency
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	ShippingAddress string
	TrackingNumber  string // Optional, set when shipped.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
