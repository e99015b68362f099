package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	portssvc "github.com/mercapos/mercapos_backend/internal/core/ports/services"
	"github.com/mercapos/mercapos_backend/internal/core/services"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSales(ctx context.Context, ownerID domain.OwnerID, filter portsrepo.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, ownerID, filter)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

// --- Test Suite ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo    *MockSaleRepository
	mockProductRepo *MockProductRepository
	service         portssvc.SaleSvcFacade
	ownerID         domain.OwnerID
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockProductRepo)
	suite.ownerID = domain.OwnerID("owner-1")
}

func (suite *SaleServiceTestSuite) stubProduct(id, name string, stock int, sale, cost string) *domain.Product {
	return &domain.Product{
		ProductID:     id,
		OwnerID:       suite.ownerID,
		Name:          name,
		SalePrice:     decimal.RequireFromString(sale),
		CostPrice:     decimal.RequireFromString(cost),
		StockQuantity: stock,
	}
}

func (suite *SaleServiceTestSuite) TestRecordSale_SnapshotsPricesAndComputesTotals() {
	ctx := context.Background()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.ownerID, "p1").
		Return(suite.stubProduct("p1", "Coffee", 10, "10.50", "6"), nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.ownerID, "p2").
		Return(suite.stubProduct("p2", "Croissant", 5, "4", "1.25"), nil).Once()

	suite.mockSaleRepo.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return len(s.Items) == 2 &&
			s.Items[0].ProductID == "p1" &&
			s.Items[0].ProductName == "Coffee" &&
			s.Items[0].PriceAtSale.Equal(decimal.RequireFromString("10.50")) &&
			s.TotalAmount.Equal(decimal.RequireFromString("25")) &&
			s.Profit.Equal(decimal.RequireFromString("11.75")) &&
			s.PaymentMethod == domain.PaymentCash
	})).Return(nil).Once()

	sale, err := suite.service.RecordSale(ctx, suite.ownerID, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		PaymentMethod: "cash",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	// No amount received given: the sale is exact, no change.
	suite.True(sale.AmountReceived.Equal(decimal.RequireFromString("25")))
	suite.True(sale.ChangeGiven.IsZero())
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestRecordSale_ChangeFromAmountReceived() {
	ctx := context.Background()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.ownerID, "p1").
		Return(suite.stubProduct("p1", "Coffee", 10, "10.50", "6"), nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.Anything).Return(nil).Once()

	received := decimal.RequireFromString("20")
	sale, err := suite.service.RecordSale(ctx, suite.ownerID, dto.CreateSaleRequest{
		Items:          []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		PaymentMethod:  "cash",
		AmountReceived: &received,
	})

	suite.Require().NoError(err)
	suite.True(sale.ChangeGiven.Equal(decimal.RequireFromString("9.50")))
}

func (suite *SaleServiceTestSuite) TestRecordSale_EmptyCartRejected() {
	ctx := context.Background()

	sale, err := suite.service.RecordSale(ctx, suite.ownerID, dto.CreateSaleRequest{
		PaymentMethod: "cash",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sale)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestRecordSale_UnknownPaymentMethod() {
	ctx := context.Background()

	sale, err := suite.service.RecordSale(ctx, suite.ownerID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		PaymentMethod: "barter",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sale)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestRecordSale_ProductNotFound() {
	ctx := context.Background()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.ownerID, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	sale, err := suite.service.RecordSale(ctx, suite.ownerID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "ghost", Quantity: 1}},
		PaymentMethod: "cash",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(sale)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestRecordSale_InsufficientStock() {
	ctx := context.Background()
	suite.mockProductRepo.On("FindProductByID", ctx, suite.ownerID, "p1").
		Return(suite.stubProduct("p1", "Coffee", 1, "10.50", "6"), nil).Once()

	sale, err := suite.service.RecordSale(ctx, suite.ownerID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 3}},
		PaymentMethod: "cash",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Contains(err.Error(), "Coffee has 1 units")
	suite.Nil(sale)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestListSales_InclusiveDayWindow() {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)
	end := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	suite.mockSaleRepo.On("FindSales", ctx, suite.ownerID, mock.MatchedBy(func(f portsrepo.SaleFilter) bool {
		return f.From != nil && f.From.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) &&
			f.To != nil && f.To.Equal(time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)) &&
			f.Limit == 1000
	})).Return([]domain.Sale{}, nil).Once()

	_, err := suite.service.ListSales(ctx, suite.ownerID, dto.ListSalesParams{
		StartDate: &start,
		EndDate:   &end,
	})

	suite.Require().NoError(err)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
