package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the quantity below which a product is flagged for
// restocking. Kept in one place so every stock-affecting operation derives the
// flag identically.
const LowStockThreshold = 10

// Product is an inventory record. Stock is mutated exclusively through the
// product repository's conditional adjustment so the quantity can never go
// negative.
type Product struct {
	ProductID     string          `json:"id"`
	OwnerID       OwnerID         `json:"-"`
	Barcode       string          `json:"barcode"`
	Name          string          `json:"name"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category"`
	LowStockAlert bool            `json:"low_stock_alert"`
	CreatedAt     time.Time       `json:"created_at"`
}

// IsLowStock reports whether a quantity is below the restock threshold.
func IsLowStock(quantity int) bool {
	return quantity < LowStockThreshold
}

// RecomputeLowStockAlert refreshes the derived flag from the current quantity.
func (p *Product) RecomputeLowStockAlert() {
	p.LowStockAlert = IsLowStock(p.StockQuantity)
}
