package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRequestModel mirrors the 'purchase_requests' table.
type PurchaseRequestModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	DepartmentID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount         float64    `gorm:"type:numeric(14,2);not null;check:amount > 0"`
	Description    string     `gorm:"type:text;not null"`
	Category       string     `gorm:"type:varchar(100);not null"`
	Justification  string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	DecisionReason string     `gorm:"type:text"`
	SubmittedAt    time.Time  `gorm:"not null;index"`
	ProcessedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseRequestModel) TableName() string {
	return "purchase_requests"
}
