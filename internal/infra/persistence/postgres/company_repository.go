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

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyModel model.CompanyModel
	if err := r.db.WithContext(ctx).First(&companyModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}

	return companyModelToEntity(&companyModel), nil
}

func (r *companyRepository) FindByJoinCode(ctx context.Context, joinCode string) (*entity.Company, error) {
	var companyModel model.CompanyModel
	if err := r.db.WithContext(ctx).First(&companyModel, "join_code = ?", joinCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by join code")
	}

	return companyModelToEntity(&companyModel), nil
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyModel := companyEntityToModel(company)
	if err := r.db.WithContext(ctx).Create(companyModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "join code collision")
		}

		return errors.Wrap(err, "failed to create company")
	}

	company.ID = companyModel.ID
	company.CreatedAt = companyModel.CreatedAt
	company.UpdatedAt = companyModel.UpdatedAt

	return nil
}

func companyModelToEntity(m *model.CompanyModel) *entity.Company {
	return &entity.Company{
		ID:        m.ID,
		Name:      m.Name,
		Size:      entity.CompanySize(m.Size),
		Industry:  entity.Industry(m.Industry),
		JoinCode:  m.JoinCode,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func companyEntityToModel(e *entity.Company) *model.CompanyModel {
	return &model.CompanyModel{
		ID:        e.ID,
		Name:      e.Name,
		Size:      string(e.Size),
		Industry:  string(e.Industry),
		JoinCode:  e.JoinCode,
		OwnerID:   e.OwnerID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
