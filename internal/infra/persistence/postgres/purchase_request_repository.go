package postgres

import (
	"context"
	"time"

	"budgetai/internal/domain/entity"
	"budgetai/internal/domain/repository"
	"budgetai/internal/errors"
	"budgetai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type purchaseRequestRepository struct {
	db *gorm.DB
}

// NewPurchaseRequestRepository is the constructor for purchaseRequestRepository.
func NewPurchaseRequestRepository(db *gorm.DB) repository.PurchaseRequestRepository {
	return &purchaseRequestRepository{db: db}
}

func (r *purchaseRequestRepository) Create(ctx context.Context, request *entity.PurchaseRequest) error {
	requestModel := purchaseRequestEntityToModel(request)
	if err := r.db.WithContext(ctx).Create(requestModel).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "request amount must be positive")
		}

		return errors.Wrap(err, "failed to create purchase request")
	}

	request.ID = requestModel.ID
	request.CreatedAt = requestModel.CreatedAt
	request.UpdatedAt = requestModel.UpdatedAt

	return nil
}

func (r *purchaseRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRequest, error) {
	var requestModel model.PurchaseRequestModel
	if err := r.db.WithContext(ctx).First(&requestModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase request by id")
	}

	return purchaseRequestModelToEntity(&requestModel), nil
}

func (r *purchaseRequestRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseRequest, error) {
	var requestModels []model.PurchaseRequestModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchase requests by user")
	}

	return purchaseRequestModelsToEntities(requestModels), nil
}

func (r *purchaseRequestRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, filter repository.RequestFilter) ([]*entity.PurchaseRequest, error) {
	query := r.db.WithContext(ctx).
		Model(&model.PurchaseRequestModel{}).
		Joins("JOIN departments ON departments.id = purchase_requests.department_id").
		Where("departments.company_id = ?", companyID)

	if filter.DepartmentID != nil {
		query = query.Where("purchase_requests.department_id = ?", *filter.DepartmentID)
	}
	if filter.Status != nil {
		query = query.Where("purchase_requests.status = ?", filter.Status.String())
	}

	var requestModels []model.PurchaseRequestModel
	err := query.
		Order("purchase_requests.submitted_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchase requests by company")
	}

	return purchaseRequestModelsToEntities(requestModels), nil
}

// ResolveIfPending is a conditional UPDATE guarded by the pending status.
// RowsAffected == 0 means another resolution won the race (or the request
// does not exist); the caller distinguishes the two with a preceding lookup.
func (r *purchaseRequestRepository) ResolveIfPending(ctx context.Context, id uuid.UUID, status entity.RequestStatus, reason string, processedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PurchaseRequestModel{}).
		Where("id = ? AND status = ?", id, entity.RequestStatusPending.String()).
		Updates(map[string]any{
			"status":          status.String(),
			"decision_reason": reason,
			"processed_at":    processedAt,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to resolve purchase request")
	}

	return result.RowsAffected > 0, nil
}

func (r *purchaseRequestRepository) CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PurchaseRequestModel{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count purchase requests by department")
	}

	return count, nil
}

func purchaseRequestModelsToEntities(requestModels []model.PurchaseRequestModel) []*entity.PurchaseRequest {
	requests := make([]*entity.PurchaseRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = purchaseRequestModelToEntity(&requestModels[i])
	}

	return requests
}

func purchaseRequestModelToEntity(m *model.PurchaseRequestModel) *entity.PurchaseRequest {
	return &entity.PurchaseRequest{
		ID:             m.ID,
		UserID:         m.UserID,
		DepartmentID:   m.DepartmentID,
		Amount:         m.Amount,
		Description:    m.Description,
		Category:       m.Category,
		Justification:  m.Justification,
		Status:         entity.RequestStatus(m.Status),
		DecisionReason: m.DecisionReason,
		SubmittedAt:    m.SubmittedAt,
		ProcessedAt:    m.ProcessedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func purchaseRequestEntityToModel(e *entity.PurchaseRequest) *model.PurchaseRequestModel {
	return &model.PurchaseRequestModel{
		ID:             e.ID,
		UserID:         e.UserID,
		DepartmentID:   e.DepartmentID,
		Amount:         e.Amount,
		Description:    e.Description,
		Category:       e.Category,
		Justification:  e.Justification,
		Status:         e.Status.String(),
		DecisionReason: e.DecisionReason,
		SubmittedAt:    e.SubmittedAt,
		ProcessedAt:    e.ProcessedAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
