package repositories

import (
	"context"
	"time"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// ReportingReader defines the read-only aggregates backing the dashboard.
// Implementations never write.
type ReportingReader interface {
	// SalesTotalsSince sums revenue, profit and sale count for sales at or
	// after the given instant.
	SalesTotalsSince(ctx context.Context, ownerID domain.OwnerID, since time.Time) (domain.SalesTotals, error)

	// CountProducts returns the owner's total product count.
	CountProducts(ctx context.Context, ownerID domain.OwnerID) (int64, error)

	// FindLowStockProducts returns every product below the low-stock
	// threshold.
	FindLowStockProducts(ctx context.Context, ownerID domain.OwnerID) ([]domain.Product, error)
}
