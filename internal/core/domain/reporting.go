package domain

import "github.com/shopspring/decimal"

// SalesTotals is an aggregate over a window of sales.
type SalesTotals struct {
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Count   int64           `json:"sales_count"`
}

// InventorySummary describes the current stock position.
type InventorySummary struct {
	TotalProducts    int64     `json:"total_products"`
	LowStockCount    int64     `json:"low_stock_count"`
	LowStockProducts []Product `json:"low_stock_products"`
}

// DashboardStats is the read-side rollup shown on the dashboard. It is
// recomputed from current sale and product state on every call.
type DashboardStats struct {
	Today     SalesTotals      `json:"today"`
	Month     SalesTotals      `json:"month"`
	Inventory InventorySummary `json:"inventory"`
}
