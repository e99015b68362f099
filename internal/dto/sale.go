package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// SaleItemRequest is one cart line submitted for a sale.
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest defines a cart to be recorded as a sale.
type CreateSaleRequest struct {
	Items          []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod  string            `json:"payment_method" binding:"required,oneof=cash card"`
	AmountReceived *decimal.Decimal  `json:"amount_received"` // Optional, defaults to the sale total
}

// ListSalesParams defines query parameters for listing sales. Dates are
// inclusive calendar-day bounds.
type ListSalesParams struct {
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// SaleLineItemResponse mirrors one frozen line of a recorded sale.
type SaleLineItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	CostAtSale  decimal.Decimal `json:"cost_at_sale"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	ID             string                 `json:"id"`
	Items          []SaleLineItemResponse `json:"items"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	Profit         decimal.Decimal        `json:"profit"`
	PaymentMethod  string                 `json:"payment_method"`
	AmountReceived decimal.Decimal        `json:"amount_received"`
	ChangeGiven    decimal.Decimal        `json:"change_given"`
	Date           time.Time              `json:"date"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleLineItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleLineItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
			CostAtSale:  item.CostAtSale,
		}
	}
	return SaleResponse{
		ID:             s.SaleID,
		Items:          items,
		TotalAmount:    s.TotalAmount,
		Profit:         s.Profit,
		PaymentMethod:  string(s.PaymentMethod),
		AmountReceived: s.AmountReceived,
		ChangeGiven:    s.ChangeGiven,
		Date:           s.OccurredAt,
	}
}

// ToListSaleResponse converts a slice of domain.Sale to response DTOs
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, s := range sales {
		res[i] = ToSaleResponse(&s)
	}
	return res
}
