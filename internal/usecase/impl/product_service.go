package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "budgetai/internal/delivery/context"
	"budgetai/internal/domain/entity"
	domainerrors "budgetai/internal/domain/errors"
	"budgetai/internal/domain/repository"
	"budgetai/internal/errors"
	"budgetai/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of the catalog, newest first.
func (srv *productService) List(ctx context.Context, page, limit int) (*usecase.ProductPage, error) {
	page, limit = clampPaging(page, limit)

	items, total, err := srv.productRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return buildProductPage(items, total, page, limit), nil
}

// Get returns one catalog listing.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// Create adds a listing to the catalog.
func (srv *productService) Create(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("title", input.Title))

	product := productFromInput(input)
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// Update replaces a listing's mutable fields.
func (srv *productService) Update(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)
	product.ID = id
	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.Get(ctx, id)
}

// Delete removes a listing from the catalog.
func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("productID", id))

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// Search runs a filtered, sorted catalog query.
func (srv *productService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.ProductPage, error) {
	page, limit := clampPaging(input.Page, input.Limit)

	query := repository.ProductQuery{
		Text:     strings.TrimSpace(input.Query),
		Category: input.Filters.Category,
		InStock:  input.Filters.InStock,
		Sort:     repository.ProductSort(input.Sort),
		Page:     page,
		Limit:    limit,
	}
	if query.Sort == "" {
		query.Sort = repository.SortRelevance
	}

	if input.Filters.PriceRange != "" {
		minPrice, maxPrice, err := parsePriceRange(input.Filters.PriceRange)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WrapMessage("invalid priceRange filter"), "bad price range")
		}
		query.MinPrice = minPrice
		query.MaxPrice = maxPrice
	}

	items, total, err := srv.productRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return buildProductPage(items, total, page, limit), nil
}

// parsePriceRange parses the storefront's "$lo-$hi" notation. Bounds are
// inclusive; "$500+" means an open upper bound.
func parsePriceRange(priceRange string) (*float64, *float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(priceRange), "$", "")
	if cleaned == "" {
		return nil, nil, errors.New("empty price range")
	}

	if openEnded, found := strings.CutSuffix(cleaned, "+"); found {
		minPrice, err := strconv.ParseFloat(strings.TrimSpace(openEnded), 64)
		if err != nil || minPrice < 0 {
			return nil, nil, errors.New("invalid open-ended price range")
		}

		return &minPrice, nil, nil
	}

	parts := strings.SplitN(cleaned, "-", 2)
	if len(parts) != 2 {
		return nil, nil, errors.New("price range must be lo-hi")
	}

	minPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || minPrice < 0 {
		return nil, nil, errors.New("invalid lower price bound")
	}
	maxPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || maxPrice < minPrice {
		return nil, nil, errors.New("invalid upper price bound")
	}

	return &minPrice, &maxPrice, nil
}

func clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit
}

func buildProductPage(items []*entity.Product, total int64, page, limit int) *usecase.ProductPage {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.ProductPage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func productFromInput(input *usecase.ProductInput) *entity.Product {
	return &entity.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Currency:    entity.Currency(input.Currency),
		Images:      input.Images,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
		Seller: entity.Seller{
			ID:       input.Seller.ID,
			Name:     input.Seller.Name,
			Rating:   input.Seller.Rating,
			Verified: input.Seller.Verified,
		},
		Category:       input.Category,
		InStock:        input.InStock,
		Specifications: input.Specifications,
	}
}
