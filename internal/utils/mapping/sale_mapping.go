package mapping

import (
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	"github.com/mercapos/mercapos_backend/internal/models"
)

// ToModelSale converts a domain sale to its database model (header only,
// line items are mapped separately).
func ToModelSale(s domain.Sale) models.Sale {
	return models.Sale{
		SaleID:         s.SaleID,
		OwnerID:        s.OwnerID.String(),
		TotalAmount:    s.TotalAmount,
		Profit:         s.Profit,
		PaymentMethod:  string(s.PaymentMethod),
		AmountReceived: s.AmountReceived,
		ChangeGiven:    s.ChangeGiven,
		OccurredAt:     s.OccurredAt,
	}
}

// ToModelSaleItems converts the line items of a domain sale, preserving
// cart order via the position column.
func ToModelSaleItems(s domain.Sale) []models.SaleItem {
	out := make([]models.SaleItem, 0, len(s.Items))
	for i, item := range s.Items {
		out = append(out, models.SaleItem{
			SaleID:      s.SaleID,
			Position:    i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
			CostAtSale:  item.CostAtSale,
		})
	}
	return out
}

// ToDomainSale converts a sale header and its items back to the domain type.
func ToDomainSale(m models.Sale, items []models.SaleItem) domain.Sale {
	s := domain.Sale{
		SaleID:         m.SaleID,
		OwnerID:        domain.OwnerID(m.OwnerID),
		Items:          make([]domain.SaleLineItem, 0, len(items)),
		TotalAmount:    m.TotalAmount,
		Profit:         m.Profit,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		AmountReceived: m.AmountReceived,
		ChangeGiven:    m.ChangeGiven,
		OccurredAt:     m.OccurredAt,
	}
	for _, item := range items {
		s.Items = append(s.Items, domain.SaleLineItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
			CostAtSale:  item.CostAtSale,
		})
	}
	return s
}
