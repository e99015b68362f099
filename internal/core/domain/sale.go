package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether the payment method is one of the supported kinds.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// SaleLineItem is one product entry within a sale. Name, price and cost are
// frozen at the moment of sale so later product edits never rewrite history.
type SaleLineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	CostAtSale  decimal.Decimal `json:"cost_at_sale"`
}

// Sale is a completed, immutable sales transaction. There is deliberately no
// update or delete path for sales.
type Sale struct {
	SaleID         string          `json:"id"`
	OwnerID        OwnerID         `json:"-"`
	Items          []SaleLineItem  `json:"items"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Profit         decimal.Decimal `json:"profit"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	AmountReceived decimal.Decimal `json:"amount_received"`
	ChangeGiven    decimal.Decimal `json:"change_given"`
	OccurredAt     time.Time       `json:"date"`
}

// TotalsFromItems recomputes total revenue and total cost from the line items.
// Services use this as the single source of truth for sale money math.
func TotalsFromItems(items []SaleLineItem) (totalAmount, totalCost decimal.Decimal) {
	totalAmount = decimal.Zero
	totalCost = decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		totalAmount = totalAmount.Add(item.PriceAtSale.Mul(qty))
		totalCost = totalCost.Add(item.CostAtSale.Mul(qty))
	}
	return totalAmount, totalCost
}
