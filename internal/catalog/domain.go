package catalog

import (
	"time"
)

// Tier selects which of a product's unit prices applies to a sale line.
type Tier string

const (
	// TierNormal is the regular sale price.
	TierNormal Tier = "normal"
	// TierCash is the discounted cash price.
	TierCash Tier = "cash"
	// TierWholesale is the bulk price.
	TierWholesale Tier = "wholesale"
)

// StockLevel buckets a product's stock for display badges.
type StockLevel string

const (
	StockLevelLow    StockLevel = "low"
	StockLevelMedium StockLevel = "medium"
	StockLevelHigh   StockLevel = "high"
)

// Product is a catalog entry with per-tier unit prices and current stock.
// PriceSale and PriceBuy are legacy fields still present in data written by
// earlier revisions; they are read for price fallback but never written.
type Product struct {
	ID             string    `json:"id"`
	PhotoURL       string    `json:"photoUrl,omitempty"`
	Category       string    `json:"category,omitempty"`
	Code           string    `json:"code"`
	PriceNormal    float64   `json:"priceNormal"`
	PriceCash      float64   `json:"priceCash"`
	PriceWholesale float64   `json:"priceWholesale"`
	Stock          int       `json:"stock"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`

	PriceSale float64 `json:"priceSale,omitempty"`
	PriceBuy  float64 `json:"priceBuy,omitempty"`
}

// Level classifies current stock: 3 or fewer is low, up to 8 is medium.
func (p Product) Level() StockLevel {
	switch {
	case p.Stock <= 3:
		return StockLevelLow
	case p.Stock <= 8:
		return StockLevelMedium
	default:
		return StockLevelHigh
	}
}

// Available reports whether the product shows up in the public catalog.
func (p Product) Available() bool {
	return p.Stock > 0
}

// uncategorized groups products without a category in catalog views.
const uncategorized = "Sin categoría"

// CategoryGroup is a catalog section: one category and its products.
type CategoryGroup struct {
	Category string    `json:"category"`
	Products []Product `json:"products"`
}
