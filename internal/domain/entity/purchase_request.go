package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the purchase-request state. The machine is
// pending -> approved (terminal, ledger incremented) and
// pending -> denied (terminal, no ledger effect). There is no way back to pending.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDenied   RequestStatus = "denied"
)

// String returns the string representation of the status.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusDenied:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the request lifecycle.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusDenied
}

// PurchaseRequest is an employee's spend request against a department budget.
type PurchaseRequest struct {
	ID             uuid.UUID
	UserID         uuid.UUID // The employee who submitted the request.
	DepartmentID   uuid.UUID // The department whose budget the spend counts against.
	Amount         float64   // Positive currency value.
	Description    string
	Category       string
	Justification  string        // Optional free text from the employee.
	Status         RequestStatus // pending on creation; resolved exactly once.
	DecisionReason string        // Optional free text explaining the resolution.
	SubmittedAt    time.Time
	ProcessedAt    *time.Time // Set at the pending -> approved/denied transition.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
