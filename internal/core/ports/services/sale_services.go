package services

import (
	"context"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

// SaleSvcFacade is the sale transaction processor: it validates a cart,
// reserves stock, computes totals and persists the sale as one logical unit.
type SaleSvcFacade interface {
	// RecordSale validates and persists a cart as an immutable sale. Stock is
	// decremented for every line item and an open cash session, if any, is
	// settled — all within a single transaction.
	RecordSale(ctx context.Context, ownerID domain.OwnerID, req dto.CreateSaleRequest) (*domain.Sale, error)

	// ListSales retrieves sales within an inclusive date window, newest-first,
	// capped at 1000 results.
	ListSales(ctx context.Context, ownerID domain.OwnerID, params dto.ListSalesParams) ([]domain.Sale, error)
}
