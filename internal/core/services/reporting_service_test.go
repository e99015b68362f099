package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portssvc "github.com/mercapos/mercapos_backend/internal/core/ports/services"
	"github.com/mercapos/mercapos_backend/internal/core/services"
)

// --- Mock ReportingReader ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SalesTotalsSince(ctx context.Context, ownerID domain.OwnerID, since time.Time) (domain.SalesTotals, error) {
	args := m.Called(ctx, ownerID, since)
	var totals domain.SalesTotals
	if args.Get(0) != nil {
		totals = args.Get(0).(domain.SalesTotals)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) CountProducts(ctx context.Context, ownerID domain.OwnerID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) FindLowStockProducts(ctx context.Context, ownerID domain.OwnerID) ([]domain.Product, error) {
	args := m.Called(ctx, ownerID)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
	ownerID           domain.OwnerID
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
	suite.ownerID = domain.OwnerID("owner-1")
}

func (suite *ReportingServiceTestSuite) TestDashboardStats_AssemblesRollup() {
	ctx := context.Background()
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayTotals := domain.SalesTotals{
		Revenue: decimal.RequireFromString("120"),
		Profit:  decimal.RequireFromString("40"),
		Count:   6,
	}
	monthTotals := domain.SalesTotals{
		Revenue: decimal.RequireFromString("3100"),
		Profit:  decimal.RequireFromString("900"),
		Count:   148,
	}
	lowStock := []domain.Product{
		{ProductID: "p1", Name: "Matches", StockQuantity: 2},
		{ProductID: "p2", Name: "Sugar", StockQuantity: 4},
	}

	suite.mockReportingRepo.On("SalesTotalsSince", ctx, suite.ownerID, mock.MatchedBy(func(since time.Time) bool {
		return since.Equal(startOfToday)
	})).Return(todayTotals, nil).Once()
	suite.mockReportingRepo.On("SalesTotalsSince", ctx, suite.ownerID, mock.MatchedBy(func(since time.Time) bool {
		return since.Equal(startOfMonth)
	})).Return(monthTotals, nil).Once()
	suite.mockReportingRepo.On("CountProducts", ctx, suite.ownerID).Return(int64(57), nil).Once()
	suite.mockReportingRepo.On("FindLowStockProducts", ctx, suite.ownerID).Return(lowStock, nil).Once()

	stats, err := suite.service.DashboardStats(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.True(stats.Today.Revenue.Equal(todayTotals.Revenue))
	suite.Equal(int64(148), stats.Month.Count)
	suite.Equal(int64(57), stats.Inventory.TotalProducts)
	suite.Equal(int64(2), stats.Inventory.LowStockCount)
	suite.Len(stats.Inventory.LowStockProducts, 2)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDashboardStats_PropagatesAggregateError() {
	ctx := context.Background()

	suite.mockReportingRepo.On("SalesTotalsSince", ctx, suite.ownerID, mock.Anything).
		Return(domain.SalesTotals{}, context.DeadlineExceeded).Once()

	stats, err := suite.service.DashboardStats(ctx, suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "CountProducts")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
