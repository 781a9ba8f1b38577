package impl

import (
	"context"
	"testing"

	"budgetai/internal/domain/entity"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/repository"
	mockRepo "budgetai/internal/mocks/repository"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// departmentServiceFixtures holds all test dependencies for department service tests.
type departmentServiceFixtures struct {
	t              *testing.T
	service        usecase.DepartmentUsecase
	txManager      *mockRepo.MockTransactionManager
	departmentRepo *mockRepo.MockDepartmentRepository
}

func createTestDepartmentService(t *testing.T) departmentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	departmentRepo := mockRepo.NewMockDepartmentRepository(t)

	service := NewDepartmentService(DepartmentServiceParams{
		TxManager:      txManager,
		DepartmentRepo: departmentRepo,
		Logger:         newDiscardLogger(),
	})

	return departmentServiceFixtures{
		t:              t,
		service:        service,
		txManager:      txManager,
		departmentRepo: departmentRepo,
	}
}

func (fx departmentServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)
			_ = fn(mockFactory)
		}).
		Return(result)
}

func TestDepartmentService_Create_Success(t *testing.T) {
	fx := createTestDepartmentService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.departmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Department")).
		Run(func(ctx context.Context, department *entity.Department) {
			department.ID = uuid.New()
		}).
		Return(nil)

	department, err := fx.service.Create(ctx, companyID, &usecase.CreateDepartmentInput{
		Name:          "Engineering",
		MonthlyBudget: 5000,
	})

	require.NoError(t, err)
	assert.Equal(t, companyID, department.CompanyID)
	assert.InDelta(t, 5000, department.MonthlyBudget, 0.001)
	assert.Zero(t, department.CurrentSpent)
}

func TestDepartmentService_Update_OtherCompanyInvisible(t *testing.T) {
	fx := createTestDepartmentService(t)

	ctx := context.Background()
	departmentID := uuid.New()
	foreign := &entity.Department{ID: departmentID, CompanyID: uuid.New()}

	fx.departmentRepo.EXPECT().FindByID(ctx, departmentID).Return(foreign, nil)

	department, err := fx.service.Update(ctx, uuid.New(), departmentID, &usecase.UpdateDepartmentInput{
		Name:          "Renamed",
		MonthlyBudget: 100,
	})

	assert.Error(t, err)
	assert.Nil(t, department)
	assert.True(t, errors.Is(err, domainerrors.ErrDepartmentNotFound))
}

func TestDepartmentService_Update_Success(t *testing.T) {
	fx := createTestDepartmentService(t)

	ctx := context.Background()
	companyID := uuid.New()
	departmentID := uuid.New()
	existing := &entity.Department{
		ID:            departmentID,
		CompanyID:     companyID,
		Name:          "Engineering",
		MonthlyBudget: 5000,
		CurrentSpent:  1200,
	}

	fx.departmentRepo.EXPECT().FindByID(ctx, departmentID).Return(existing, nil)
	fx.departmentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Department")).
		Run(func(ctx context.Context, updated *entity.Department) {
			assert.Equal(t, "Platform", updated.Name)
			assert.InDelta(t, 8000, updated.MonthlyBudget, 0.001)
			// Accumulators stay untouched by renames and budget changes.
			assert.InDelta(t, 1200, updated.CurrentSpent, 0.001)
		}).
		Return(nil)

	department, err := fx.service.Update(ctx, companyID, departmentID, &usecase.UpdateDepartmentInput{
		Name:          "Platform",
		MonthlyBudget: 8000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Platform", department.Name)
}

func TestDepartmentService_Delete_Success(t *testing.T) {
	fx := createTestDepartmentService(t)

	ctx := context.Background()
	companyID := uuid.New()
	departmentID := uuid.New()
	department := &entity.Department{ID: departmentID, CompanyID: companyID}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)
		mockRequestRepo := mockRepo.NewMockPurchaseRequestRepository(t)

		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)
		factory.EXPECT().RequestRepo().Return(mockRequestRepo)

		mockDepartmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
		mockRequestRepo.EXPECT().CountByDepartment(ctx, departmentID).Return(0, nil)
		mockDepartmentRepo.EXPECT().Delete(ctx, departmentID).Return(nil)
	})

	err := fx.service.Delete(ctx, companyID, departmentID)

	require.NoError(t, err)
}

func TestDepartmentService_Delete_StillReferenced(t *testing.T) {
	fx := createTestDepartmentService(t)

	ctx := context.Background()
	companyID := uuid.New()
	departmentID := uuid.New()
	department := &entity.Department{ID: departmentID, CompanyID: companyID}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrDepartmentInUse, "purchase requests still reference this department"), func(factory *mockRepo.MockRepositoryFactory) {
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)
		mockRequestRepo := mockRepo.NewMockPurchaseRequestRepository(t)

		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)
		factory.EXPECT().RequestRepo().Return(mockRequestRepo)

		mockDepartmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
		mockRequestRepo.EXPECT().CountByDepartment(ctx, departmentID).Return(3, nil)
	})

	err := fx.service.Delete(ctx, companyID, departmentID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDepartmentInUse))
}
