package postgres

import (
	"context"

	"budgetai/internal/domain/entity"
	"budgetai/internal/domain/repository"
	"budgetai/internal/errors"
	"budgetai/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository is the constructor for departmentRepository.
func NewDepartmentRepository(db *gorm.DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Department, error) {
	var departmentModel model.DepartmentModel
	if err := r.db.WithContext(ctx).First(&departmentModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDepartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find department by id")
	}

	return departmentModelToEntity(&departmentModel), nil
}

func (r *departmentRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Department, error) {
	var departmentModels []model.DepartmentModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&departmentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments by company")
	}

	departments := make([]*entity.Department, len(departmentModels))
	for i := range departmentModels {
		departments[i] = departmentModelToEntity(&departmentModels[i])
	}

	return departments, nil
}

func (r *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	departmentModel := departmentEntityToModel(department)
	if err := r.db.WithContext(ctx).Create(departmentModel).Error; err != nil {
		return errors.Wrap(err, "failed to create department")
	}

	department.ID = departmentModel.ID
	department.CreatedAt = departmentModel.CreatedAt
	department.UpdatedAt = departmentModel.UpdatedAt

	return nil
}

func (r *departmentRepository) Update(ctx context.Context, department *entity.Department) error {
	result := r.db.WithContext(ctx).
		Model(&model.DepartmentModel{}).
		Where("id = ?", department.ID).
		Updates(map[string]any{
			"name":           department.Name,
			"monthly_budget": department.MonthlyBudget,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update department")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DepartmentModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete department")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

// IncrementSpent issues a single UPDATE so concurrent approvals serialize on
// the stored row instead of racing through read-modify-write.
func (r *departmentRepository) IncrementSpent(ctx context.Context, id uuid.UUID, amount float64) error {
	result := r.db.WithContext(ctx).
		Model(&model.DepartmentModel{}).
		Where("id = ?", id).
		Update("current_spent", gorm.Expr("current_spent + ?", amount))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment department spend")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

func (r *departmentRepository) IncrementEmployeeCount(ctx context.Context, id uuid.UUID, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&model.DepartmentModel{}).
		Where("id = ?", id).
		Update("employee_count", gorm.Expr("employee_count + ?", delta))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "employee count cannot go negative")
		}

		return errors.Wrap(result.Error, "failed to increment employee count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

func departmentModelToEntity(m *model.DepartmentModel) *entity.Department {
	return &entity.Department{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		MonthlyBudget: m.MonthlyBudget,
		CurrentSpent:  m.CurrentSpent,
		EmployeeCount: m.EmployeeCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func departmentEntityToModel(e *entity.Department) *model.DepartmentModel {
	return &model.DepartmentModel{
		ID:            e.ID,
		CompanyID:     e.CompanyID,
		Name:          e.Name,
		MonthlyBudget: e.MonthlyBudget,
		CurrentSpent:  e.CurrentSpent,
		EmployeeCount: e.EmployeeCount,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
