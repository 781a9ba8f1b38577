package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Total           float64   `gorm:"type:numeric(14,2);not null;check:total >= 0"`
	Currency        string    `gorm:"type:varchar(10);not null;default:'USD'"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus   string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ShippingAddress string    `gorm:"type:text"`
	TrackingNumber  string    `gorm:"type:varchar(100)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Title, image and unit price
// are snapshots taken when the order was placed.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(300);not null"`
	Image     string    `gorm:"type:varchar(500)"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	UnitPrice float64   `gorm:"type:numeric(14,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
