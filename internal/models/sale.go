package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale mirrors the sales table.
type Sale struct {
	SaleID         string          `db:"sale_id"`
	OwnerID        string          `db:"owner_id"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	Profit         decimal.Decimal `db:"profit"`
	PaymentMethod  string          `db:"payment_method"`
	AmountReceived decimal.Decimal `db:"amount_received"`
	ChangeGiven    decimal.Decimal `db:"change_given"`
	OccurredAt     time.Time       `db:"occurred_at"`
}

// SaleItem mirrors the sale_items table. Position preserves cart order.
type SaleItem struct {
	SaleID      string          `db:"sale_id"`
	Position    int             `db:"position"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	PriceAtSale decimal.Decimal `db:"price_at_sale"`
	CostAtSale  decimal.Decimal `db:"cost_at_sale"`
}
