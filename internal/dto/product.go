package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// CreateProductRequest defines the data needed to register a product.
// SalePrice and StockQuantity are pointers so explicit zero values (a free
// product, an empty shelf) pass the presence check.
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	SalePrice     *decimal.Decimal `json:"sale_price" binding:"required"`
	StockQuantity *int             `json:"stock_quantity" binding:"required,gte=0"`
	CostPrice     decimal.Decimal  `json:"cost_price"` // Optional, defaults to 0
	Barcode       string           `json:"barcode"`    // Optional
	Category      string           `json:"category"`   // Optional, defaults to "General"
}

// UpdateProductRequest defines the data allowed for a partial product update.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Barcode       *string          `json:"barcode"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	StockQuantity *int             `json:"stock_quantity"`
	Category      *string          `json:"category"`
}

// AdjustStockRequest applies a signed delta to a product's stock. Delta is a
// pointer so an explicit 0 still passes the presence check.
type AdjustStockRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Search  string `form:"search"`
	Barcode string `form:"barcode"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID            string          `json:"id"`
	Barcode       string          `json:"barcode"`
	Name          string          `json:"name"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category"`
	LowStockAlert bool            `json:"low_stock_alert"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ProductID,
		Barcode:       p.Barcode,
		Name:          p.Name,
		CostPrice:     p.CostPrice,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		LowStockAlert: p.LowStockAlert,
		CreatedAt:     p.CreatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to response DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
