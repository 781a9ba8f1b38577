package entity

import (
	"time"

	"github.com/google/uuid"
)

// Currency is the pricing currency for the shopping catalog.
type Currency string

const (
	CurrencyUSD  Currency = "USD"
	CurrencyUSDC Currency = "USDC"
)

// IsValid checks if the Currency is a valid value.
func (c Currency) IsValid() bool {
	return c == CurrencyUSD || c == CurrencyUSDC
}

// Seller is the embedded merchant block on a product listing.
type Seller struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Verified bool    `json:"verified"`
}

// Product is a shopping-catalog listing. Specifications is an open
// string-keyed map rendered as a detail table by the storefront.
type Product struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Price          float64
	Currency       Currency
	Images         []string
	Rating         float64
	ReviewCount    int
	Seller         Seller
	Category       string
	InStock        bool
	Specifications map[string]string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
