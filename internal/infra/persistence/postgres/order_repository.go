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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its line items. Callers needing atomicity run
// it through the transaction manager.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := orderEntityToModel(order)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	order.UpdatedAt = orderModel.UpdatedAt
	for i, itemModel := range orderModel.Items {
		order.Items[i].ID = itemModel.ID
		order.Items[i].OrderID = itemModel.OrderID
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&orderModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return orderModelToEntity(&orderModel), nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModelToEntity(&orderModels[i])
	}

	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":           string(order.Status),
			"payment_status":   string(order.PaymentStatus),
			"shipping_address": order.ShippingAddress,
			"tracking_number":  order.TrackingNumber,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes the line items first to satisfy the foreign key. Callers
// needing atomicity run it through the transaction manager.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.OrderItemModel{}, "order_id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	result := r.db.WithContext(ctx).Delete(&model.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func orderModelToEntity(m *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, len(m.Items))
	for i, itemModel := range m.Items {
		items[i] = entity.OrderItem{
			ID:        itemModel.ID,
			OrderID:   itemModel.OrderID,
			ProductID: itemModel.ProductID,
			Title:     itemModel.Title,
			Image:     itemModel.Image,
			Quantity:  itemModel.Quantity,
			UnitPrice: itemModel.UnitPrice,
		}
	}

	return &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		Items:           items,
		Total:           m.Total,
		Currency:        entity.Currency(m.Currency),
		Status:          entity.OrderStatus(m.Status),
		PaymentStatus:   entity.PaymentStatus(m.PaymentStatus),
		ShippingAddress: m.ShippingAddress,
		TrackingNumber:  m.TrackingNumber,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func orderEntityToModel(e *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, len(e.Items))
	for i, item := range e.Items {
		items[i] = &model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Image:     item.Image,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return &model.OrderModel{
		ID:              e.ID,
		UserID:          e.UserID,
		Total:           e.Total,
		Currency:        string(e.Currency),
		Status:          string(e.Status),
		PaymentStatus:   string(e.PaymentStatus),
		ShippingAddress: e.ShippingAddress,
		TrackingNumber:  e.TrackingNumber,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Items:           items,
	}
}
