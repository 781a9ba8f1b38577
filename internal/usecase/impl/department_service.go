package impl

import (
	"context"
	"log/slog"

	deliverycontext "budgetai/internal/delivery/context"
	"budgetai/internal/domain/entity"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/repository"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// departmentService implements the DepartmentUsecase interface.
type departmentService struct {
	txManager      repository.TransactionManager
	departmentRepo repository.DepartmentRepository
	logger         *slog.Logger
}

// DepartmentServiceParams holds dependencies for departmentService, injected by Fx.
type DepartmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DepartmentRepo repository.DepartmentRepository
	Logger         *slog.Logger
}

// NewDepartmentService is the constructor for departmentService.
func NewDepartmentService(params DepartmentServiceParams) usecase.DepartmentUsecase {
	return &departmentService{
		txManager:      params.TxManager,
		departmentRepo: params.DepartmentRepo,
		logger:         params.Logger,
	}
}

func (srv *departmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all departments of the company, name-ascending.
func (srv *departmentService) List(ctx context.Context, companyID uuid.UUID) ([]*entity.Department, error) {
	departments, err := srv.departmentRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return departments, nil
}

// Create adds a department to the company.
func (srv *departmentService) Create(ctx context.Context, companyID uuid.UUID, input *usecase.CreateDepartmentInput) (*entity.Department, error) {
	srv.log(ctx).Info("Creating department", slog.Any("companyID", companyID), slog.String("name", input.Name))

	department := &entity.Department{
		CompanyID:     companyID,
		Name:          input.Name,
		MonthlyBudget: input.MonthlyBudget,
	}
	if err := srv.departmentRepo.Create(ctx, department); err != nil {
		return nil, errors.Wrap(err, "failed to create department")
	}

	return department, nil
}

// Update renames a department or changes its monthly budget. The spend and
// employee accumulators are never written here.
func (srv *departmentService) Update(ctx context.Context, companyID, departmentID uuid.UUID, input *usecase.UpdateDepartmentInput) (*entity.Department, error) {
	department, err := srv.loadScoped(ctx, companyID, departmentID)
	if err != nil {
		return nil, err
	}

	department.Name = input.Name
	department.MonthlyBudget = input.MonthlyBudget
	if err := srv.departmentRepo.Update(ctx, department); err != nil {
		return nil, errors.Wrap(err, "failed to update department")
	}

	return department, nil
}

// Delete removes a department, refusing while purchase requests still
// reference it. Check and delete run in one transaction.
func (srv *departmentService) Delete(ctx context.Context, companyID, departmentID uuid.UUID) error {
	srv.log(ctx).Info("Deleting department", slog.Any("departmentID", departmentID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		departmentRepo := repoFactory.DepartmentRepo()
		requestRepo := repoFactory.RequestRepo()

		department, findErr := departmentRepo.FindByID(ctx, departmentID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrDepartmentNotFound) {
				return errors.Wrap(domainerrors.ErrDepartmentNotFound, "department does not exist")
			}

			return errors.Wrap(findErr, "failed to load department for deletion")
		}
		if department.CompanyID != companyID {
			return errors.Wrap(domainerrors.ErrDepartmentNotFound, "department belongs to another company")
		}

		referencing, countErr := requestRepo.CountByDepartment(ctx, departmentID)
		if countErr != nil {
			return errors.Wrap(countErr, "failed to count referencing requests")
		}
		if referencing > 0 {
			return errors.Wrap(domainerrors.ErrDepartmentInUse, "purchase requests still reference this department")
		}

		return errors.Wrap(departmentRepo.Delete(ctx, departmentID), "failed to delete department")
	})
	if err != nil {
		srv.log(ctx).Warn("Department deletion failed", slog.Any("departmentID", departmentID), slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *departmentService) loadScoped(ctx context.Context, companyID, departmentID uuid.UUID) (*entity.Department, error) {
	department, err := srv.departmentRepo.FindByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDepartmentNotFound, "department does not exist")
		}

		return nil, errors.Wrap(err, "failed to load department")
	}
	if department.CompanyID != companyID {
		return nil, errors.Wrap(domainerrors.ErrDepartmentNotFound, "department belongs to another company")
	}

	return department, nil
}
