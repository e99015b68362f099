package repositories

import (
	"context"
	"time"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// SaleFilter narrows a sale listing to an inclusive date window.
type SaleFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// SaleReader defines read operations for sale history
type SaleReader interface {
	// FindSales retrieves an owner's sales newest-first, capped at
	// filter.Limit.
	FindSales(ctx context.Context, ownerID domain.OwnerID, filter SaleFilter) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// SaveSale persists the sale, decrements stock for every line item and
	// settles the owner's open cash session (if any) within a single database
	// transaction. A failure at any step leaves no visible mutation.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
