package services

import (
	"context"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// ReportingSvcFacade is the read-side aggregator behind the dashboard. It
// never writes.
type ReportingSvcFacade interface {
	// DashboardStats recomputes the dashboard rollup from current sale and
	// product state.
	DashboardStats(ctx context.Context, ownerID domain.OwnerID) (*domain.DashboardStats, error)
}
