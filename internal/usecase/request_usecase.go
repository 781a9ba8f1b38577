package usecase

import (
	"context"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitRequestInput defines the data required to submit a purchase request.
type SubmitRequestInput struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Description   string  `json:"description" validate:"required"`
	Category      string  `json:"category" validate:"required,max=100"`
	Justification string  `json:"justification"`
}

// ListCompanyRequestsInput narrows the admin listing. Empty or "all" values
// mean no filter.
type ListCompanyRequestsInput struct {
	DepartmentID string `json:"departmentId"`
	Status       string `json:"status" validate:"omitempty,oneof=all pending approved denied"`
}

// ResolveRequestInput defines the data required to resolve a pending request.
type ResolveRequestInput struct {
	Status string `json:"status" validate:"required,oneof=approved denied"`
	Reason string `json:"reason"`
}

// --- Output DTOs ---

// SubmitRequestOutput returns the created request plus the department's
// remaining budget for display. Submission is never blocked on budget.
type SubmitRequestOutput struct {
	Request         *entity.PurchaseRequest
	RemainingBudget float64
}

// RequestUsecase defines the interface for purchase-request operations.
type RequestUsecase interface {
	// Submit creates a pending request against the caller's department.
	Submit(ctx context.Context, userID uuid.UUID, input *SubmitRequestInput) (*SubmitRequestOutput, error)

	// ListForEmployee returns the caller's own requests, newest submission first.
	ListForEmployee(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseRequest, error)

	// ListForCompany returns requests across the company, optionally filtered.
	ListForCompany(ctx context.Context, companyID uuid.UUID, input *ListCompanyRequestsInput) ([]*entity.PurchaseRequest, error)

	// Resolve transitions a pending request to approved or denied exactly once,
	// incrementing the department ledger on approval in the same transaction.
	Resolve(ctx context.Context, companyID, requestID uuid.UUID, input *ResolveRequestInput) (*entity.PurchaseRequest, error)
}
