package entity

import (
	"time"

	"github.com/google/uuid"
)

// Department belongs to exactly one company. CurrentSpent and EmployeeCount
// are accumulators mutated only through atomic single-statement increments at
// the storage layer, never read-modify-write.
type Department struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	Name          string
	MonthlyBudget float64 // Allocation ceiling, non-negative.
	CurrentSpent  float64 // Running total of approved spend for the period.
	EmployeeCount int     // Denormalized counter, incremented when a user joins.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RemainingBudget is the informational headroom shown next to pending requests.
// It can go negative: submission is never blocked on budget.
func (d *Department) RemainingBudget() float64 {
	return d.MonthlyBudget - d.CurrentSpent
}
