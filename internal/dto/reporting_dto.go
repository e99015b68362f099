package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// PeriodStatsResponse is one revenue/profit window on the dashboard.
type PeriodStatsResponse struct {
	Revenue    decimal.Decimal `json:"revenue"`
	Profit     decimal.Decimal `json:"profit"`
	SalesCount *int64          `json:"sales_count,omitempty"`
}

// InventoryStatsResponse summarizes the current stock position.
type InventoryStatsResponse struct {
	TotalProducts    int64             `json:"total_products"`
	LowStockCount    int64             `json:"low_stock_count"`
	LowStockProducts []ProductResponse `json:"low_stock_products"`
}

// DashboardStatsResponse is the full dashboard rollup.
type DashboardStatsResponse struct {
	Today     PeriodStatsResponse    `json:"today"`
	Month     PeriodStatsResponse    `json:"month"`
	Inventory InventoryStatsResponse `json:"inventory"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO
func ToDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	todayCount := stats.Today.Count
	return DashboardStatsResponse{
		Today: PeriodStatsResponse{
			Revenue:    stats.Today.Revenue,
			Profit:     stats.Today.Profit,
			SalesCount: &todayCount,
		},
		Month: PeriodStatsResponse{
			Revenue: stats.Month.Revenue,
			Profit:  stats.Month.Profit,
		},
		Inventory: InventoryStatsResponse{
			TotalProducts:    stats.Inventory.TotalProducts,
			LowStockCount:    stats.Inventory.LowStockCount,
			LowStockProducts: ToListProductResponse(stats.Inventory.LowStockProducts),
		},
	}
}
