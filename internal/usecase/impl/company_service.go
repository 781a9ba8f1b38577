package impl

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"log/slog"

	deliverycontext "budgetai/internal/delivery/context"
	"budgetai/internal/domain/entity"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/repository"
	"budgetai/internal/domain/service"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// joinCodeLength is the number of base32 characters in a join code; 8
// characters carry 40 bits of entropy, enough to make guessing impractical.
const joinCodeLength = 8

// companyService implements the CompanyUsecase interface.
type companyService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	companyRepo   repository.CompanyRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// CompanyServiceParams holds dependencies for companyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	CompanyRepo   repository.CompanyRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		companyRepo:   params.CompanyRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create sets up a new company, makes the caller its admin owner and completes
// their onboarding, all in one transaction.
func (srv *companyService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateCompanyInput) (*entity.Company, error) {
	srv.log(ctx).Info("Creating company", slog.Any("userID", userID), slog.String("name", input.Name))

	joinCode, err := generateJoinCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate join code")
	}

	var createdCompany *entity.Company
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		companyRepo := repoFactory.CompanyRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load user for company creation")
		}
		if user.OnboardingCompleted {
			return errors.Wrap(domainerrors.ErrAlreadyOnboarded, "user already belongs to a company")
		}

		newCompany := &entity.Company{
			Name:     input.Name,
			Size:     entity.CompanySize(input.Size),
			Industry: entity.Industry(input.Industry),
			JoinCode: joinCode,
			OwnerID:  user.ID,
		}
		if createErr := companyRepo.Create(ctx, newCompany); createErr != nil {
			return errors.Wrap(createErr, "failed to create company")
		}

		user.Role = entity.RoleAdmin
		user.CompanyID = &newCompany.ID
		user.OnboardingCompleted = true
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to attach owner to company")
		}

		createdCompany = newCompany

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Company creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Company created", slog.Any("companyID", createdCompany.ID))

	return createdCompany, nil
}

// Join attaches the caller to the company behind the join code. The caller
// always ends up as an employee regardless of their signup role, and the
// department employee counter moves in the same transaction.
func (srv *companyService) Join(ctx context.Context, userID uuid.UUID, input *usecase.JoinCompanyInput) (*entity.Company, error) {
	srv.log(ctx).Info("Joining company", slog.Any("userID", userID))

	var joinedCompany *entity.Company
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		companyRepo := repoFactory.CompanyRepo()
		departmentRepo := repoFactory.DepartmentRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load user for company join")
		}
		if user.OnboardingCompleted {
			return errors.Wrap(domainerrors.ErrAlreadyOnboarded, "user already belongs to a company")
		}

		company, findErr := companyRepo.FindByJoinCode(ctx, input.JoinCode)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCompanyNotFound) {
				return errors.Wrap(domainerrors.ErrJoinCodeNotFound, "no company for join code")
			}

			return errors.Wrap(findErr, "failed to look up join code")
		}

		// A department reference is only honored when it belongs to the
		// company being joined.
		if input.DepartmentID != nil {
			department, deptErr := departmentRepo.FindByID(ctx, *input.DepartmentID)
			if deptErr != nil {
				if errors.Is(deptErr, repository.ErrDepartmentNotFound) {
					return errors.Wrap(domainerrors.ErrDepartmentNotFound, "department does not exist")
				}

				return errors.Wrap(deptErr, "failed to load department for join")
			}
			if department.CompanyID != company.ID {
				return errors.Wrap(domainerrors.ErrDepartmentNotFound, "department belongs to another company")
			}
		}

		user.Role = entity.RoleEmployee
		user.CompanyID = &company.ID
		user.DepartmentID = input.DepartmentID
		user.OnboardingCompleted = true
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to attach user to company")
		}

		if input.DepartmentID != nil {
			if incErr := departmentRepo.IncrementEmployeeCount(ctx, *input.DepartmentID, 1); incErr != nil {
				return errors.Wrap(incErr, "failed to increment department employee count")
			}
		}

		joinedCompany = company

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Company join failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Company joined", slog.Any("companyID", joinedCompany.ID))

	return joinedCompany, nil
}

// GetByUser returns the caller's company.
func (srv *companyService) GetByUser(ctx context.Context, userID uuid.UUID) (*entity.Company, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "caller not found")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}
	if user.CompanyID == nil {
		return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "user has no company")
	}

	company, err := srv.companyRepo.FindByID(ctx, *user.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "company not found")
		}

		return nil, errors.Wrap(err, "failed to load company")
	}

	return company, nil
}

// JoinCodeQR renders the caller's company join code as a PNG image.
func (srv *companyService) JoinCodeQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	company, err := srv.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateJoinCodeQR(company.JoinCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render join code QR")
	}

	return png, nil
}

// generateJoinCode returns a short random base32 token. Collisions surface as
// a unique-constraint error on insert.
func generateJoinCode() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	code := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)

	return code[:joinCodeLength], nil
}
