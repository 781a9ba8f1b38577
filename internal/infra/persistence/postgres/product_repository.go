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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := productEntityToModel(product)
	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productModel.ID
	product.CreatedAt = productModel.CreatedAt
	product.UpdatedAt = productModel.UpdatedAt

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	if err := r.db.WithContext(ctx).First(&productModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return productModelToEntity(&productModel), nil
}

func (r *productRepository) FindAll(ctx context.Context, page, limit int) ([]*entity.Product, int64, error) {
	return r.runPagedQuery(ctx, r.db.WithContext(ctx).Model(&model.ProductModel{}), "created_at DESC", page, limit)
}

func (r *productRepository) Search(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.ProductModel{})

	if query.Text != "" {
		pattern := "%" + query.Text + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}
	if query.Category != "" {
		db = db.Where("LOWER(category) = LOWER(?)", query.Category)
	}
	if query.InStock != nil {
		db = db.Where("in_stock = ?", *query.InStock)
	}
	// Price bounds are inclusive.
	if query.MinPrice != nil {
		db = db.Where("price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		db = db.Where("price <= ?", *query.MaxPrice)
	}

	return r.runPagedQuery(ctx, db, orderClauseForSort(query.Sort), query.Page, query.Limit)
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productModel := productEntityToModel(product)
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"title":           productModel.Title,
			"description":     productModel.Description,
			"price":           productModel.Price,
			"currency":        productModel.Currency,
			"images":          productModel.Images,
			"rating":          productModel.Rating,
			"review_count":    productModel.ReviewCount,
			"seller_id":       productModel.SellerID,
			"seller_name":     productModel.SellerName,
			"seller_rating":   productModel.SellerRating,
			"seller_verified": productModel.SellerVerified,
			"category":        productModel.Category,
			"in_stock":        productModel.InStock,
			"specifications":  productModel.Specifications,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) runPagedQuery(_ context.Context, db *gorm.DB, orderClause string, page, limit int) ([]*entity.Product, int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var productModels []model.ProductModel
	err := db.
		Order(orderClause).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&productModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = productModelToEntity(&productModels[i])
	}

	return products, total, nil
}

func orderClauseForSort(sort repository.ProductSort) string {
	switch sort {
	case repository.SortPriceLow:
		return "price ASC"
	case repository.SortPriceHigh:
		return "price DESC"
	case repository.SortRating:
		return "rating DESC"
	case repository.SortNewest:
		return "created_at DESC"
	case repository.SortPopularity:
		return "review_count DESC"
	case repository.SortRelevance:
		fallthrough
	default:
		// Relevance without a text-rank column degrades to rating weighted by volume.
		return "rating DESC, review_count DESC"
	}
}

func productModelToEntity(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Currency:    entity.Currency(m.Currency),
		Images:      m.Images,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		Seller: entity.Seller{
			ID:       m.SellerID,
			Name:     m.SellerName,
			Rating:   m.SellerRating,
			Verified: m.SellerVerified,
		},
		Category:       m.Category,
		InStock:        m.InStock,
		Specifications: m.Specifications,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func productEntityToModel(e *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Price:          e.Price,
		Currency:       string(e.Currency),
		Images:         e.Images,
		Rating:         e.Rating,
		ReviewCount:    e.ReviewCount,
		SellerID:       e.Seller.ID,
		SellerName:     e.Seller.Name,
		SellerRating:   e.Seller.Rating,
		SellerVerified: e.Seller.Verified,
		Category:       e.Category,
		InStock:        e.InStock,
		Specifications: e.Specifications,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
