package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors the products table.
type Product struct {
	ProductID     string          `db:"product_id"`
	OwnerID       string          `db:"owner_id"`
	Barcode       string          `db:"barcode"`
	Name          string          `db:"name"`
	CostPrice     decimal.Decimal `db:"cost_price"`
	SalePrice     decimal.Decimal `db:"sale_price"`
	StockQuantity int             `db:"stock_quantity"`
	Category      string          `db:"category"`
	LowStockAlert bool            `db:"low_stock_alert"`
	CreatedAt     time.Time       `db:"created_at"`
}
