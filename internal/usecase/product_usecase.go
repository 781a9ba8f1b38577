package usecase

import (
	"context"

	"budgetai/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SellerInput is the merchant block on a product payload.
type SellerInput struct {
	ID       string  `json:"id" validate:"required,max=100"`
	Name     string  `json:"name" validate:"required,max=200"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
	Verified bool    `json:"verified"`
}

// ProductInput defines the data required to create or replace a catalog listing.
type ProductInput struct {
	Title          string            `json:"title" validate:"required,max=300"`
	Description    string            `json:"description"`
	Price          float64           `json:"price" validate:"gte=0"`
	Currency       string            `json:"currency" validate:"required,oneof=USD USDC"`
	Images         []string          `json:"images"`
	Rating         float64           `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount    int               `json:"reviewCount" validate:"gte=0"`
	Seller         SellerInput       `json:"seller"`
	Category       string            `json:"category" validate:"required,max=100"`
	InStock        bool              `json:"inStock"`
	Specifications map[string]string `json:"specifications"`
}

// SearchFilters narrows a catalog search. PriceRange uses the storefront's
// "$lo-$hi" notation with inclusive bounds.
type SearchFilters struct {
	Category   string `json:"category"`
	InStock    *bool  `json:"inStock"`
	PriceRange string `json:"priceRange"`
}

// SearchInput defines a catalog search request.
type SearchInput struct {
	Query   string        `json:"query"`
	Filters SearchFilters `json:"filters"`
	Sort    string        `json:"sort" validate:"omitempty,oneof=price_low price_high rating newest relevance popularity"`
	Page    int           `json:"page" validate:"gte=0"`
	Limit   int           `json:"limit" validate:"gte=0,lte=100"`
}

// --- Output DTOs ---

// ProductPage is one page of catalog results.
type ProductPage struct {
	Items      []*entity.Product
	Total      int64
	Page       int
	TotalPages int
}

// ProductUsecase defines the interface for shopping-catalog operations.
type ProductUsecase interface {
	List(ctx context.Context, page, limit int) (*ProductPage, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, input *SearchInput) (*ProductPage, error)
}
