package impl

import (
	"context"
	"testing"
	"time"

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

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	t              *testing.T
	service        usecase.RequestUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	requestRepo    *mockRepo.MockPurchaseRequestRepository
	departmentRepo *mockRepo.MockDepartmentRepository
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	requestRepo := mockRepo.NewMockPurchaseRequestRepository(t)
	departmentRepo := mockRepo.NewMockDepartmentRepository(t)

	service := NewRequestService(RequestServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		RequestRepo:    requestRepo,
		DepartmentRepo: departmentRepo,
		Logger:         newDiscardLogger(),
	})

	return requestServiceFixtures{
		t:              t,
		service:        service,
		txManager:      txManager,
		userRepo:       userRepo,
		requestRepo:    requestRepo,
		departmentRepo: departmentRepo,
	}
}

func (fx requestServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)
			_ = fn(mockFactory)
		}).
		Return(result)
}

func TestRequestService_Submit_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	departmentID := uuid.New()
	user := &entity.User{ID: userID, DepartmentID: &departmentID}
	department := &entity.Department{
		ID:            departmentID,
		Name:          "Engineering",
		MonthlyBudget: 1000,
		CurrentSpent:  250,
	}
	input := &usecase.SubmitRequestInput{
		Amount:        99.99,
		Description:   "Mechanical keyboard",
		Category:      "equipment",
		Justification: "Current one is broken",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.departmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PurchaseRequest")).
		Run(func(ctx context.Context, request *entity.PurchaseRequest) {
			request.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Submit(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, output.Request.Status)
	assert.Equal(t, departmentID, output.Request.DepartmentID)
	assert.InDelta(t, 750, output.RemainingBudget, 0.001)
}

func TestRequestService_Submit_NoDepartment(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	output, err := fx.service.Submit(ctx, userID, &usecase.SubmitRequestInput{
		Amount:      50,
		Description: "Desk lamp",
		Category:    "equipment",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRequestService_ListForCompany_Filters(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	companyID := uuid.New()
	departmentID := uuid.New()
	pending := entity.RequestStatusPending

	fx.requestRepo.EXPECT().
		FindByCompany(ctx, companyID, repository.RequestFilter{
			DepartmentID: &departmentID,
			Status:       &pending,
		}).
		Return([]*entity.PurchaseRequest{{ID: uuid.New(), Status: pending}}, nil)

	requests, err := fx.service.ListForCompany(ctx, companyID, &usecase.ListCompanyRequestsInput{
		DepartmentID: departmentID.String(),
		Status:       "pending",
	})

	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestRequestService_ListForCompany_AllMeansNoFilter(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.requestRepo.EXPECT().
		FindByCompany(ctx, companyID, repository.RequestFilter{}).
		Return([]*entity.PurchaseRequest{}, nil)

	requests, err := fx.service.ListForCompany(ctx, companyID, &usecase.ListCompanyRequestsInput{
		DepartmentID: "all",
		Status:       "all",
	})

	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestRequestService_ListForCompany_BadStatusFilter(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	companyID := uuid.New()

	requests, err := fx.service.ListForCompany(ctx, companyID, &usecase.ListCompanyRequestsInput{
		Status: "escalated",
	})

	assert.Error(t, err)
	assert.Nil(t, requests)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRequestService_Resolve_ApproveIncrementsSpend(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	companyID := uuid.New()
	departmentID := uuid.New()
	requestID := uuid.New()
	request := &entity.PurchaseRequest{
		ID:           requestID,
		DepartmentID: departmentID,
		Amount:       120,
		Status:       entity.RequestStatusPending,
	}
	department := &entity.Department{ID: departmentID, CompanyID: companyID}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockRequestRepo := mockRepo.NewMockPurchaseRequestRepository(t)
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)

		factory.EXPECT().RequestRepo().Return(mockRequestRepo)
		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)

		mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
		mockDepartmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
		mockRequestRepo.EXPECT().
			ResolveIfPending(ctx, requestID, entity.RequestStatusApproved, "within budget", mock.AnythingOfType("time.Time")).
			Return(true, nil)
		mockDepartmentRepo.EXPECT().IncrementSpent(ctx, departmentID, 120.0).Return(nil)
	})

	resolved, err := fx.service.Resolve(ctx, companyID, requestID, &usecase.ResolveRequestInput{
		Status: "approved",
		Reason: "within budget",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, resolved.Status)
	assert.Equal(t, "within budget", resolved.DecisionReason)
	assert.NotNil(t, resolved.ProcessedAt)
}

func TestRequestService_Resolve_DenyLeavesLedgerUntouched(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	companyID := uuid.New()
	departmentID := uuid.New()
	requestID := uuid.New()
	request := &entity.PurchaseRequest{
		ID:           requestID,
		DepartmentID: departmentID,
		Amount:       500,
		Status:       entity.RequestStatusPending,
	}
	department := &entity.Department{ID: departmentID, CompanyID: companyID}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockRequestRepo := mockRepo.NewMockPurchaseRequestRepository(t)
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)

		factory.EXPECT().RequestRepo().Return(mockRequestRepo)
		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)

		mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
		mockDepartmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
		mockRequestRepo.EXPECT().
			ResolveIfPending(ctx, requestID, entity.RequestStatusDenied, "too expensive", mock.AnythingOfType("time.Time")).
			Return(true, nil)
		// No IncrementSpent expectation: a denial must not touch the ledger.
	})

	resolved, err := fx.service.Resolve(ctx, companyID, requestID, &usecase.ResolveRequestInput{
		Status: "denied",
		Reason: "too expensive",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusDenied, resolved.Status)
}

func TestRequestService_Resolve_AlreadyResolved(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	companyID := uuid.New()
	departmentID := uuid.New()
	requestID := uuid.New()
	request := &entity.PurchaseRequest{
		ID:           requestID,
		DepartmentID: departmentID,
		Amount:       120,
		Status:       entity.RequestStatusPending,
	}
	department := &entity.Department{ID: departmentID, CompanyID: companyID}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrRequestAlreadyResolved, "purchase request already resolved"), func(factory *mockRepo.MockRepositoryFactory) {
		mockRequestRepo := mockRepo.NewMockPurchaseRequestRepository(t)
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)

		factory.EXPECT().RequestRepo().Return(mockRequestRepo)
		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)

		mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
		mockDepartmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
		// A concurrent resolver won the race: the guarded update reports no
		// transition and the ledger must stay untouched.
		mockRequestRepo.EXPECT().
			ResolveIfPending(ctx, requestID, entity.RequestStatusApproved, "", mock.AnythingOfType("time.Time")).
			Return(false, nil)
	})

	resolved, err := fx.service.Resolve(ctx, companyID, requestID, &usecase.ResolveRequestInput{Status: "approved"})

	assert.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestAlreadyResolved))
}

func TestRequestService_Resolve_OtherCompanyInvisible(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	companyID := uuid.New()
	departmentID := uuid.New()
	requestID := uuid.New()
	request := &entity.PurchaseRequest{
		ID:           requestID,
		DepartmentID: departmentID,
		Status:       entity.RequestStatusPending,
	}
	department := &entity.Department{ID: departmentID, CompanyID: uuid.New()}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrRequestNotFound, "purchase request belongs to another company"), func(factory *mockRepo.MockRepositoryFactory) {
		mockRequestRepo := mockRepo.NewMockPurchaseRequestRepository(t)
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)

		factory.EXPECT().RequestRepo().Return(mockRequestRepo)
		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)

		mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
		mockDepartmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
	})

	resolved, err := fx.service.Resolve(ctx, companyID, requestID, &usecase.ResolveRequestInput{Status: "approved"})

	assert.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestRequestService_Resolve_InvalidStatus(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()

	resolved, err := fx.service.Resolve(ctx, uuid.New(), uuid.New(), &usecase.ResolveRequestInput{Status: "pending"})

	assert.Error(t, err)
	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRequestService_Submit_SetsSubmissionTime(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	departmentID := uuid.New()
	user := &entity.User{ID: userID, DepartmentID: &departmentID}
	department := &entity.Department{ID: departmentID, MonthlyBudget: 100}

	before := time.Now()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.departmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PurchaseRequest")).
		Return(nil)

	output, err := fx.service.Submit(ctx, userID, &usecase.SubmitRequestInput{
		Amount:      10,
		Description: "Notebook",
		Category:    "office",
	})

	require.NoError(t, err)
	assert.False(t, output.Request.SubmittedAt.Before(before))
}
