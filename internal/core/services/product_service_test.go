package services_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
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

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProducts(ctx context.Context, ownerID domain.OwnerID, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, ownerID, filter)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, ownerID domain.OwnerID, productID string) (*domain.Product, error) {
	args := m.Called(ctx, ownerID, productID)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, ownerID domain.OwnerID, productID string, delta int) (*domain.Product, error) {
	args := m.Called(ctx, ownerID, productID, delta)
	var product *domain.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*domain.Product)
	}
	return product, args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, ownerID domain.OwnerID, productID string) error {
	args := m.Called(ctx, ownerID, productID)
	return args.Error(0)
}

func (m *MockProductRepository) LockProductsForUpdate(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, tx, ownerID, productIDs)
	var products map[string]domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).(map[string]domain.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, productID string, quantity int) error {
	args := m.Called(ctx, tx, ownerID, productID, quantity)
	return args.Error(0)
}

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	service         portssvc.ProductSvcFacade
	ownerID         domain.OwnerID
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockProductRepo)
	suite.ownerID = domain.OwnerID("owner-1")
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	stock := 25
	req := dto.CreateProductRequest{
		Name:          "Coffee Beans 1kg",
		SalePrice:     decPtr("18.50"),
		CostPrice:     decimal.RequireFromString("11"),
		StockQuantity: &stock,
		Barcode:       "7501234567890",
	}

	suite.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == req.Name &&
			p.OwnerID == suite.ownerID &&
			p.StockQuantity == stock &&
			p.Category == "General" &&
			!p.LowStockAlert &&
			p.ProductID != ""
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.Equal("General", product.Category)
	suite.False(product.LowStockAlert)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_LowInitialStockSetsFlag() {
	ctx := context.Background()
	stock := 3
	req := dto.CreateProductRequest{
		Name:          "Matches",
		SalePrice:     decPtr("0.50"),
		StockQuantity: &stock,
	}

	suite.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.LowStockAlert
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.True(product.LowStockAlert)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_ZeroPriceAllowed() {
	ctx := context.Background()
	stock := 5
	req := dto.CreateProductRequest{
		Name:          "Free sample",
		SalePrice:     decPtr("0"),
		StockQuantity: &stock,
	}

	suite.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Free sample" && p.SalePrice.IsZero()
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.True(product.SalePrice.IsZero())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePriceRejected() {
	ctx := context.Background()
	stock := 1
	req := dto.CreateProductRequest{
		Name:          "Broken",
		SalePrice:     decPtr("-1"),
		StockQuantity: &stock,
	}

	product, err := suite.service.CreateProduct(ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(product)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct")
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_PartialPreservesFields() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID:     "prod-1",
		OwnerID:       suite.ownerID,
		Name:          "Old Name",
		Barcode:       "123",
		CostPrice:     decimal.RequireFromString("5"),
		SalePrice:     decimal.RequireFromString("9"),
		StockQuantity: 50,
		Category:      "Drinks",
	}
	newName := "New Name"
	req := dto.UpdateProductRequest{Name: &newName}

	suite.mockProductRepo.On("FindProductByID", ctx, suite.ownerID, "prod-1").Return(existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == newName &&
			p.Barcode == "123" &&
			p.Category == "Drinks" &&
			p.StockQuantity == 50 &&
			!p.LowStockAlert
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, suite.ownerID, "prod-1", req)

	suite.Require().NoError(err)
	suite.Equal(newName, product.Name)
	suite.Equal("Drinks", product.Category)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_StockDropSetsLowFlag() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID:     "prod-1",
		OwnerID:       suite.ownerID,
		Name:          "Tea",
		SalePrice:     decimal.RequireFromString("3"),
		StockQuantity: 50,
	}
	newStock := 4
	req := dto.UpdateProductRequest{StockQuantity: &newStock}

	suite.mockProductRepo.On("FindProductByID", ctx, suite.ownerID, "prod-1").Return(existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.StockQuantity == 4 && p.LowStockAlert
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, suite.ownerID, "prod-1", req)

	suite.Require().NoError(err)
	suite.True(product.LowStockAlert)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NotFound() {
	ctx := context.Background()
	req := dto.UpdateProductRequest{}

	suite.mockProductRepo.On("FindProductByID", ctx, suite.ownerID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.UpdateProduct(ctx, suite.ownerID, "missing", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(product)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "UpdateProduct")
}

func (suite *ProductServiceTestSuite) TestAdjustStock_InsufficientStock() {
	ctx := context.Background()

	suite.mockProductRepo.On("AdjustStock", ctx, suite.ownerID, "prod-1", -10).
		Return(nil, apperrors.ErrInsufficientStock).Once()

	product, err := suite.service.AdjustStock(ctx, suite.ownerID, "prod-1", -10)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Nil(product)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_NotFound() {
	ctx := context.Background()

	suite.mockProductRepo.On("DeleteProduct", ctx, suite.ownerID, "missing").
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProduct(ctx, suite.ownerID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
