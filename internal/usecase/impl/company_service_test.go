package impl

import (
	"context"
	"testing"

	"budgetai/internal/domain/entity"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/repository"
	mockRepo "budgetai/internal/mocks/repository"
	mockSvc "budgetai/internal/mocks/service"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// companyServiceFixtures holds all test dependencies for company service tests.
type companyServiceFixtures struct {
	t             *testing.T
	service       usecase.CompanyUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	companyRepo   *mockRepo.MockCompanyRepository
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestCompanyService(t *testing.T) companyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewCompanyService(CompanyServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		CompanyRepo:   companyRepo,
		QRCodeService: qrcodeService,
		Logger:        newDiscardLogger(),
	})

	return companyServiceFixtures{
		t:             t,
		service:       service,
		txManager:     txManager,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		qrcodeService: qrcodeService,
	}
}

func (fx companyServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)
			_ = fn(mockFactory)
		}).
		Return(result)
}

func TestCompanyService_Create_Success(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleEmployee}
	input := &usecase.CreateCompanyInput{
		Name:     "Acme Corp",
		Size:     "11-50",
		Industry: "technology",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockCompanyRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Company")).
			Run(func(ctx context.Context, company *entity.Company) {
				company.ID = uuid.New()
			}).
			Return(nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				assert.Equal(t, entity.RoleAdmin, updated.Role)
				assert.True(t, updated.OnboardingCompleted)
				assert.NotNil(t, updated.CompanyID)
			}).
			Return(nil)
	})

	company, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", company.Name)
	assert.Equal(t, userID, company.OwnerID)
	assert.Len(t, company.JoinCode, 8)
}

func TestCompanyService_Create_AlreadyOnboarded(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, OnboardingCompleted: true}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAlreadyOnboarded, "user already belongs to a company"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	company, err := fx.service.Create(ctx, userID, &usecase.CreateCompanyInput{
		Name:     "Acme Corp",
		Size:     "11-50",
		Industry: "technology",
	})

	assert.Error(t, err)
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyOnboarded))
}

func TestCompanyService_Join_WithDepartment(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	companyID := uuid.New()
	departmentID := uuid.New()
	// Admin signups are demoted on join; only company creation grants admin.
	user := &entity.User{ID: userID, Role: entity.RoleAdmin}
	company := &entity.Company{ID: companyID, JoinCode: "AB2CD3EF"}
	department := &entity.Department{ID: departmentID, CompanyID: companyID}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)
		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockCompanyRepo.EXPECT().FindByJoinCode(ctx, "AB2CD3EF").Return(company, nil)
		mockDepartmentRepo.EXPECT().FindByID(ctx, departmentID).Return(department, nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				assert.Equal(t, entity.RoleEmployee, updated.Role)
				assert.Equal(t, &departmentID, updated.DepartmentID)
			}).
			Return(nil)
		mockDepartmentRepo.EXPECT().IncrementEmployeeCount(ctx, departmentID, 1).Return(nil)
	})

	joined, err := fx.service.Join(ctx, userID, &usecase.JoinCompanyInput{
		JoinCode:     "AB2CD3EF",
		DepartmentID: &departmentID,
	})

	require.NoError(t, err)
	assert.Equal(t, companyID, joined.ID)
}

func TestCompanyService_Join_UnknownJoinCode(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrJoinCodeNotFound, "no company for join code"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)
		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockCompanyRepo.EXPECT().FindByJoinCode(ctx, "NOPE1234").Return(nil, repository.ErrCompanyNotFound)
	})

	joined, err := fx.service.Join(ctx, userID, &usecase.JoinCompanyInput{JoinCode: "NOPE1234"})

	assert.Error(t, err)
	assert.Nil(t, joined)
	assert.True(t, errors.Is(err, domainerrors.ErrJoinCodeNotFound))
}

func TestCompanyService_Join_ForeignDepartmentRejected(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	companyID := uuid.New()
	departmentID := uuid.New()
	user := &entity.User{ID: userID}
	company := &entity.Company{ID: companyID, JoinCode: "AB2CD3EF"}
	foreignDepartment := &entity.Department{ID: departmentID, CompanyID: uuid.New()}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrDepartmentNotFound, "department belongs to another company"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
		mockDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)
		factory.EXPECT().DepartmentRepo().Return(mockDepartmentRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockCompanyRepo.EXPECT().FindByJoinCode(ctx, "AB2CD3EF").Return(company, nil)
		mockDepartmentRepo.EXPECT().FindByID(ctx, departmentID).Return(foreignDepartment, nil)
	})

	joined, err := fx.service.Join(ctx, userID, &usecase.JoinCompanyInput{
		JoinCode:     "AB2CD3EF",
		DepartmentID: &departmentID,
	})

	assert.Error(t, err)
	assert.Nil(t, joined)
	assert.True(t, errors.Is(err, domainerrors.ErrDepartmentNotFound))
}

func TestCompanyService_GetByUser_NoCompany(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	company, err := fx.service.GetByUser(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, company)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyNotFound))
}

func TestCompanyService_JoinCodeQR_Success(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	companyID := uuid.New()
	user := &entity.User{ID: userID, CompanyID: &companyID}
	company := &entity.Company{ID: companyID, JoinCode: "AB2CD3EF"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(company, nil)
	fx.qrcodeService.EXPECT().GenerateJoinCodeQR("AB2CD3EF").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.JoinCodeQR(ctx, userID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGenerateJoinCode_Format(t *testing.T) {
	seen := make(map[string]struct{})
	for range 32 {
		code, err := generateJoinCode()

		require.NoError(t, err)
		assert.Len(t, code, 8)
		seen[code] = struct{}{}
	}

	// 40 bits of entropy makes 32 draws colliding effectively impossible.
	assert.Greater(t, len(seen), 1)
}
