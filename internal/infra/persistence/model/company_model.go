package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel mirrors the 'companies' table.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Size      string    `gorm:"type:varchar(10);not null"`
	Industry  string    `gorm:"type:varchar(50);not null"`
	JoinCode  string    `gorm:"type:varchar(32);unique;not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Departments []DepartmentModel `gorm:"foreignKey:CompanyID"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// DepartmentModel mirrors the 'departments' table. The accumulator columns
// carry check constraints so negative values can never be stored.
type DepartmentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	MonthlyBudget float64   `gorm:"type:numeric(14,2);not null;check:monthly_budget >= 0"`
	CurrentSpent  float64   `gorm:"type:numeric(14,2);not null;default:0;check:current_spent >= 0"`
	EmployeeCount int       `gorm:"not null;default:0;check:employee_count >= 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}
