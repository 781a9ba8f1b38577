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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	t           *testing.T
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (fx orderServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)
			_ = fn(mockFactory)
		}).
		Return(result)
}

func TestOrderService_Create_SnapshotsCatalog(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	mouse := &entity.Product{
		ID:       uuid.New(),
		Title:    "Wireless Mouse",
		Price:    25,
		Currency: entity.CurrencyUSD,
		Images:   []string{"https://img.example.com/mouse.png"},
		InStock:  true,
	}
	keyboard := &entity.Product{
		ID:       uuid.New(),
		Title:    "Mechanical Keyboard",
		Price:    100,
		Currency: entity.CurrencyUSD,
		InStock:  true,
	}

	fx.productRepo.EXPECT().FindByID(ctx, mouse.ID).Return(mouse, nil)
	fx.productRepo.EXPECT().FindByID(ctx, keyboard.ID).Return(keyboard, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
	})

	order, err := fx.service.Create(ctx, userID, &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: mouse.ID, Quantity: 2},
			{ProductID: keyboard.ID, Quantity: 1},
		},
		ShippingAddress: "1 Main St",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	// Total is computed from catalog prices, never from the client.
	assert.InDelta(t, 150, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Wireless Mouse", order.Items[0].Title)
	assert.Equal(t, "https://img.example.com/mouse.png", order.Items[0].Image)
	assert.InDelta(t, 25, order.Items[0].UnitPrice, 0.001)
}

func TestOrderService_Create_OutOfStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Price: 25, Currency: entity.CurrencyUSD}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	order, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingAddress: "1 Main St",
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_Create_MixedCurrencies(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	usd := &entity.Product{ID: uuid.New(), Price: 25, Currency: entity.CurrencyUSD, InStock: true}
	usdc := &entity.Product{ID: uuid.New(), Price: 30, Currency: entity.CurrencyUSDC, InStock: true}

	fx.productRepo.EXPECT().FindByID(ctx, usd.ID).Return(usd, nil)
	fx.productRepo.EXPECT().FindByID(ctx, usdc.ID).Return(usdc, nil)

	order, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: usd.ID, Quantity: 1},
			{ProductID: usdc.ID, Quantity: 1},
		},
		ShippingAddress: "1 Main St",
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_Get_OtherUserInvisible(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	found, err := fx.service.Get(ctx, uuid.New(), orderID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_Update_EmptyFieldsUnchanged(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		UserID:        userID,
		Status:        entity.OrderStatusConfirmed,
		PaymentStatus: entity.PaymentStatusCompleted,
	}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, updated *entity.Order) {
			assert.Equal(t, entity.OrderStatusShipped, updated.Status)
			assert.Equal(t, entity.PaymentStatusCompleted, updated.PaymentStatus)
			assert.Equal(t, "TRACK-42", updated.TrackingNumber)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, userID, orderID, &usecase.UpdateOrderInput{
		Status:         "shipped",
		TrackingNumber: "TRACK-42",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
}

func TestOrderService_Delete_OnlyPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusShipped}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	err := fx.service.Delete(ctx, userID, orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotCancellable))
}

func TestOrderService_Delete_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(mockOrderRepo)
		mockOrderRepo.EXPECT().Delete(ctx, orderID).Return(nil)
	})

	err := fx.service.Delete(ctx, userID, orderID)

	require.NoError(t, err)
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	order, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ProductID: productID, Quantity: 1}},
		ShippingAddress: "1 Main St",
	})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
