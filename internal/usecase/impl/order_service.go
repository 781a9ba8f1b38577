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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an order. Titles, images and unit prices are snapshotted from
// the catalog and the total is computed server-side; client-sent prices are
// never trusted.
func (srv *orderService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("userID", userID), slog.Int("items", len(input.Items)))

	items := make([]entity.OrderItem, 0, len(input.Items))
	var total float64
	currency := entity.CurrencyUSD

	for i, itemInput := range input.Items {
		product, err := srv.productRepo.FindByID(ctx, itemInput.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, errors.Wrap(domainerrors.ErrProductNotFound, "ordered product does not exist")
			}

			return nil, errors.Wrap(err, "failed to load product for order")
		}
		if !product.InStock {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage("product is out of stock"), "out of stock")
		}
		if i == 0 {
			currency = product.Currency
		} else if product.Currency != currency {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage("order items must share a currency"), "mixed currencies")
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Image:     firstImage(product.Images),
			Quantity:  itemInput.Quantity,
			UnitPrice: product.Price,
		})
		total += product.Price * float64(itemInput.Quantity)
	}

	order := &entity.Order{
		UserID:          userID,
		Items:           items,
		Total:           total,
		Currency:        currency,
		Status:          entity.OrderStatusPending,
		PaymentStatus:   entity.PaymentStatusPending,
		ShippingAddress: input.ShippingAddress,
	}

	// Order header and line items land atomically.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.OrderRepo().Create(ctx, order), "failed to create order")
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID))

	return order, nil
}

// List returns the caller's orders, newest first.
func (srv *orderService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns one order. Other users' orders are invisible, not forbidden.
func (srv *orderService) Get(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order does not exist")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
	}

	return order, nil
}

// Update changes fulfillment fields. Empty values leave a field unchanged.
func (srv *orderService) Update(ctx context.Context, userID, orderID uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := srv.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		order.Status = entity.OrderStatus(input.Status)
	}
	if input.PaymentStatus != "" {
		order.PaymentStatus = entity.PaymentStatus(input.PaymentStatus)
	}
	if input.TrackingNumber != "" {
		order.TrackingNumber = input.TrackingNumber
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	return order, nil
}

// Delete cancels an order that has not left the pending state.
func (srv *orderService) Delete(ctx context.Context, userID, orderID uuid.UUID) error {
	order, err := srv.Get(ctx, userID, orderID)
	if err != nil {
		return err
	}
	if order.Status != entity.OrderStatusPending {
		return errors.Wrap(domainerrors.ErrOrderNotCancellable, "only pending orders can be deleted")
	}

	// Line items and header are removed atomically.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.OrderRepo().Delete(ctx, orderID), "failed to delete order")
	})
	if err != nil {
		srv.log(ctx).Warn("Order deletion failed", slog.Any("orderID", orderID), slog.Any("error", err))

		return err
	}

	return nil
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}

	return images[0]
}
