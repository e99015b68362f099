package services

import (
	"context"
	"time"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	portssvc "github.com/mercapos/mercapos_backend/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingReader
}

// NewReportingService creates the dashboard aggregator.
func NewReportingService(reportingRepo portsrepo.ReportingReader) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DashboardStats recomputes the dashboard rollup from current sale and
// product state. Day and month windows follow the server's local calendar.
func (s *reportingService) DashboardStats(ctx context.Context, ownerID domain.OwnerID) (*domain.DashboardStats, error) {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := s.reportingRepo.SalesTotalsSince(ctx, ownerID, startOfToday)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate today's sales")
		return nil, err
	}

	month, err := s.reportingRepo.SalesTotalsSince(ctx, ownerID, startOfMonth)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate this month's sales")
		return nil, err
	}

	totalProducts, err := s.reportingRepo.CountProducts(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count products")
		return nil, err
	}

	lowStock, err := s.reportingRepo.FindLowStockProducts(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find low stock products")
		return nil, err
	}

	return &domain.DashboardStats{
		Today: today,
		Month: month,
		Inventory: domain.InventorySummary{
			TotalProducts:    totalProducts,
			LowStockCount:    int64(len(lowStock)),
			LowStockProducts: lowStock,
		},
	}, nil
}
