package repository

import (
	"context"
	"errors"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductSort enumerates the catalog sort keys accepted by the search API.
type ProductSort string

const (
	SortPriceLow   ProductSort = "price_low"
	SortPriceHigh  ProductSort = "price_high"
	SortRating     ProductSort = "rating"
	SortNewest     ProductSort = "newest"
	SortRelevance  ProductSort = "relevance"
	SortPopularity ProductSort = "popularity"
)

// ProductQuery describes a catalog search. Zero values mean "no constraint";
// price bounds are inclusive and only applied when MinPrice/MaxPrice are non-nil.
type ProductQuery struct {
	Text     string
	Category string
	InStock  *bool
	MinPrice *float64
	MaxPrice *float64
	Sort     ProductSort
	Page     int // 1-based.
	Limit    int
}

// ProductRepository defines the persistence operations for the shopping catalog.
type ProductRepository interface {
	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll retrieves a page of the catalog, newest first.
	FindAll(ctx context.Context, page, limit int) ([]*entity.Product, int64, error)

	// Search runs a filtered, sorted, paginated catalog query and returns the
	// matching page plus the total match count.
	Search(ctx context.Context, query ProductQuery) ([]*entity.Product, int64, error)

	// Update modifies an existing product listing.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product listing.
	Delete(ctx context.Context, id uuid.UUID) error
}
