package mapping

import (
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	"github.com/mercapos/mercapos_backend/internal/models"
)

// ToModelProduct converts a domain product to its database model.
func ToModelProduct(p domain.Product) models.Product {
	return models.Product{
		ProductID:     p.ProductID,
		OwnerID:       p.OwnerID.String(),
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

// ToDomainProduct converts a database model to a domain product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		OwnerID:       domain.OwnerID(m.OwnerID),
		Barcode:       m.Barcode,
		Name:          m.Name,
		CostPrice:     m.CostPrice,
		SalePrice:     m.SalePrice,
		StockQuantity: m.StockQuantity,
		Category:      m.Category,
		LowStockAlert: m.LowStockAlert,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainProducts converts a slice of database models to domain products.
func ToDomainProducts(ms []models.Product) []domain.Product {
	out := make([]domain.Product, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDomainProduct(m))
	}
	return out
}
