package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The seller block is flattened
// into columns; images and specifications live in JSONB.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title          string          `gorm:"type:varchar(300);not null"`
	Description    string          `gorm:"type:text"`
	Price          float64         `gorm:"type:numeric(14,2);not null;check:price >= 0"`
	Currency       string          `gorm:"type:varchar(10);not null;default:'USD'"`
	Images         JSONStringSlice `gorm:"type:jsonb"`
	Rating         float64         `gorm:"type:numeric(3,2);not null;default:0"`
	ReviewCount    int             `gorm:"not null;default:0"`
	SellerID       string          `gorm:"type:varchar(100)"`
	SellerName     string          `gorm:"type:varchar(200)"`
	SellerRating   float64         `gorm:"type:numeric(3,2);not null;default:0"`
	SellerVerified bool            `gorm:"not null;default:false"`
	Category       string          `gorm:"type:varchar(100);index"`
	InStock        bool            `gorm:"not null;default:true"`
	Specifications JSONStringMap   `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
