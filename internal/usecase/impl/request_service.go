package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "budgetai/internal/delivery/context"
	"budgetai/internal/domain/entity"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/repository"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	requestRepo    repository.PurchaseRequestRepository
	departmentRepo repository.DepartmentRepository
	logger         *slog.Logger
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	RequestRepo    repository.PurchaseRequestRepository
	DepartmentRepo repository.DepartmentRepository
	Logger         *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		requestRepo:    params.RequestRepo,
		departmentRepo: params.DepartmentRepo,
		logger:         params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit creates a pending request against the caller's department. Budget
// headroom is reported but never enforced at submission time.
func (srv *requestService) Submit(ctx context.Context, userID uuid.UUID, input *usecase.SubmitRequestInput) (*usecase.SubmitRequestOutput, error) {
	srv.log(ctx).Info("Submitting purchase request", slog.Any("userID", userID), slog.Float64("amount", input.Amount))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "caller not found")
		}

		return nil, errors.Wrap(err, "failed to load user for submission")
	}
	if user.DepartmentID == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage("no department assigned"), "submission requires a department")
	}

	department, err := srv.departmentRepo.FindByID(ctx, *user.DepartmentID)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDepartmentNotFound, "department no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load department for submission")
	}

	request := &entity.PurchaseRequest{
		UserID:        userID,
		DepartmentID:  department.ID,
		Amount:        input.Amount,
		Description:   input.Description,
		Category:      input.Category,
		Justification: input.Justification,
		Status:        entity.RequestStatusPending,
		SubmittedAt:   time.Now(),
	}
	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create purchase request")
	}

	srv.log(ctx).Debug("Purchase request submitted", slog.Any("requestID", request.ID))

	return &usecase.SubmitRequestOutput{
		Request:         request,
		RemainingBudget: department.RemainingBudget(),
	}, nil
}

// ListForEmployee returns the caller's own requests, newest submission first.
func (srv *requestService) ListForEmployee(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseRequest, error) {
	requests, err := srv.requestRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests for employee")
	}

	return requests, nil
}

// ListForCompany returns requests across the company. Filter values "" and
// "all" mean no constraint.
func (srv *requestService) ListForCompany(ctx context.Context, companyID uuid.UUID, input *usecase.ListCompanyRequestsInput) ([]*entity.PurchaseRequest, error) {
	filter, err := buildRequestFilter(input)
	if err != nil {
		return nil, err
	}

	requests, err := srv.requestRepo.FindByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests for company")
	}

	return requests, nil
}

// Resolve transitions a pending request exactly once. The guarded status
// UPDATE and the department ledger increment share one transaction, so a
// crash or a lost race can never count spend twice or leave the ledger
// behind an approved request.
func (srv *requestService) Resolve(ctx context.Context, companyID, requestID uuid.UUID, input *usecase.ResolveRequestInput) (*entity.PurchaseRequest, error) {
	newStatus := entity.RequestStatus(input.Status)
	if !newStatus.IsTerminal() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage("status must be approved or denied"), "invalid resolution status")
	}

	srv.log(ctx).Info("Resolving purchase request", slog.Any("requestID", requestID), slog.Any("status", newStatus))

	var resolved *entity.PurchaseRequest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.RequestRepo()
		departmentRepo := repoFactory.DepartmentRepo()

		request, findErr := requestRepo.FindByID(ctx, requestID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "purchase request does not exist")
			}

			return errors.Wrap(findErr, "failed to load purchase request")
		}

		department, deptErr := departmentRepo.FindByID(ctx, request.DepartmentID)
		if deptErr != nil {
			return errors.Wrap(deptErr, "failed to load department for resolution")
		}
		if department.CompanyID != companyID {
			// Requests of other companies are invisible, not forbidden.
			return errors.Wrap(domainerrors.ErrRequestNotFound, "purchase request belongs to another company")
		}

		processedAt := time.Now()
		transitioned, resolveErr := requestRepo.ResolveIfPending(ctx, requestID, newStatus, input.Reason, processedAt)
		if resolveErr != nil {
			return errors.Wrap(resolveErr, "failed to resolve purchase request")
		}
		if !transitioned {
			return errors.Wrap(domainerrors.ErrRequestAlreadyResolved, "purchase request already resolved")
		}

		if newStatus == entity.RequestStatusApproved {
			if incErr := departmentRepo.IncrementSpent(ctx, department.ID, request.Amount); incErr != nil {
				return errors.Wrap(incErr, "failed to increment department spend")
			}
		}

		request.Status = newStatus
		request.DecisionReason = input.Reason
		request.ProcessedAt = &processedAt
		resolved = request

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Purchase request resolution failed", slog.Any("requestID", requestID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Purchase request resolved", slog.Any("requestID", requestID), slog.Any("status", newStatus))

	return resolved, nil
}

func buildRequestFilter(input *usecase.ListCompanyRequestsInput) (repository.RequestFilter, error) {
	var filter repository.RequestFilter
	if input == nil {
		return filter, nil
	}

	if input.DepartmentID != "" && input.DepartmentID != "all" {
		departmentID, err := uuid.Parse(input.DepartmentID)
		if err != nil {
			return filter, errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage("invalid departmentId filter"), "bad department filter")
		}
		filter.DepartmentID = &departmentID
	}

	if input.Status != "" && input.Status != "all" {
		status := entity.RequestStatus(input.Status)
		if !status.IsValid() {
			return filter, errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage("invalid status filter"), "bad status filter")
		}
		filter.Status = &status
	}

	return filter, nil
}
