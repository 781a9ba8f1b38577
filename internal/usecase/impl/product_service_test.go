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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestProductService_List_ClampsPaging(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindAll(ctx, 1, 100).
		Return([]*entity.Product{}, 0, nil)

	page, err := fx.service.List(ctx, -3, 5000)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Zero(t, page.TotalPages)
}

func TestProductService_List_ComputesTotalPages(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	items := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.productRepo.EXPECT().
		FindAll(ctx, 1, 20).
		Return(items, 41, nil)

	page, err := fx.service.List(ctx, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(41), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 2)
}

func TestProductService_Get_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.Get(ctx, productID)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_Search_DefaultsToRelevance(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		Search(ctx, repository.ProductQuery{
			Text:  "keyboard",
			Sort:  repository.SortRelevance,
			Page:  1,
			Limit: 20,
		}).
		Return([]*entity.Product{}, 0, nil)

	page, err := fx.service.Search(ctx, &usecase.SearchInput{Query: "  keyboard  "})

	require.NoError(t, err)
	assert.NotNil(t, page)
}

func TestProductService_Search_PriceRange(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	minPrice := 100.0
	maxPrice := 500.0
	inStock := true

	fx.productRepo.EXPECT().
		Search(ctx, repository.ProductQuery{
			Text:     "laptop",
			Category: "electronics",
			InStock:  &inStock,
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
			Sort:     repository.SortPriceLow,
			Page:     2,
			Limit:    10,
		}).
		Return([]*entity.Product{}, 0, nil)

	_, err := fx.service.Search(ctx, &usecase.SearchInput{
		Query: "laptop",
		Filters: usecase.SearchFilters{
			Category:   "electronics",
			InStock:    &inStock,
			PriceRange: "$100-$500",
		},
		Sort:  "price_low",
		Page:  2,
		Limit: 10,
	})

	require.NoError(t, err)
}

func TestProductService_Search_BadPriceRange(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	page, err := fx.service.Search(ctx, &usecase.SearchInput{
		Query:   "laptop",
		Filters: usecase.SearchFilters{PriceRange: "cheap"},
	})

	assert.Error(t, err)
	assert.Nil(t, page)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestParsePriceRange(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		input   string
		min     *float64
		max     *float64
		wantErr bool
	}{
		{name: "plain range", input: "100-500", min: ptr(100), max: ptr(500)},
		{name: "dollar signs", input: "$100-$500", min: ptr(100), max: ptr(500)},
		{name: "open ended", input: "$500+", min: ptr(500), max: nil},
		{name: "zero lower bound", input: "0-50", min: ptr(0), max: ptr(50)},
		{name: "equal bounds", input: "99-99", min: ptr(99), max: ptr(99)},
		{name: "decimals", input: "19.99-29.99", min: ptr(19.99), max: ptr(29.99)},
		{name: "inverted bounds", input: "500-100", wantErr: true},
		{name: "negative lower", input: "-5-10", wantErr: true},
		{name: "not numbers", input: "cheap-expensive", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "missing upper", input: "100-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minPrice, maxPrice, err := parsePriceRange(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, minPrice)
			assert.InDelta(t, *tt.min, *minPrice, 0.001)
			if tt.max == nil {
				assert.Nil(t, maxPrice)
			} else {
				require.NotNil(t, maxPrice)
				assert.InDelta(t, *tt.max, *maxPrice, 0.001)
			}
		})
	}
}

func TestProductService_Create_MapsInput(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Title:       "Wireless Mouse",
		Description: "A mouse",
		Price:       29.99,
		Currency:    "USD",
		Images:      []string{"https://img.example.com/mouse.png"},
		Category:    "electronics",
		InStock:     true,
		Seller: usecase.SellerInput{
			ID:       "seller-1",
			Name:     "Peripherals Inc",
			Rating:   4.5,
			Verified: true,
		},
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse", product.Title)
	assert.Equal(t, entity.CurrencyUSD, product.Currency)
	assert.Equal(t, "Peripherals Inc", product.Seller.Name)
}
