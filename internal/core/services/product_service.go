package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	portssvc "github.com/mercapos/mercapos_backend/internal/core/ports/services"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

const defaultCategory = "General"

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates the inventory service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct registers a new product with its low-stock flag derived from
// the initial quantity.
func (s *productService) CreateProduct(ctx context.Context, ownerID domain.OwnerID, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.SalePrice.IsNegative() || req.CostPrice.IsNegative() {
		return nil, fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = defaultCategory
	}

	product := domain.Product{
		ProductID:     uuid.NewString(),
		OwnerID:       ownerID,
		Barcode:       req.Barcode,
		Name:          req.Name,
		CostPrice:     req.CostPrice,
		SalePrice:     *req.SalePrice,
		StockQuantity: *req.StockQuantity,
		Category:      category,
		CreatedAt:     time.Now().UTC(),
	}
	product.RecomputeLowStockAlert()

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to create product", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

// ListProducts retrieves the owner's products matching the filter.
func (s *productService) ListProducts(ctx context.Context, ownerID domain.OwnerID, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	products, err := s.productRepo.FindProducts(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	return products, nil
}

// GetProductByID retrieves a single product scoped to the owner.
func (s *productService) GetProductByID(ctx context.Context, ownerID domain.OwnerID, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, ownerID, productID)
}

// UpdateProduct applies a partial update. Fields absent from the request keep
// their stored values; the low-stock flag is re-derived from the effective
// quantity.
func (s *productService) UpdateProduct(ctx context.Context, ownerID domain.OwnerID, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.CostPrice != nil {
		if req.CostPrice.IsNegative() {
			return nil, fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
		}
		product.CostPrice = *req.CostPrice
	}
	if req.SalePrice != nil {
		if req.SalePrice.IsNegative() {
			return nil, fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
		}
		product.SalePrice = *req.SalePrice
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, fmt.Errorf("%w: stock quantity must not be negative", apperrors.ErrValidation)
		}
		product.StockQuantity = *req.StockQuantity
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	product.RecomputeLowStockAlert()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}

	s.LogInfo(ctx, "Product updated", slog.String("product_id", productID))
	return product, nil
}

// AdjustStock atomically applies delta to the product's stock.
func (s *productService) AdjustStock(ctx context.Context, ownerID domain.OwnerID, productID string, delta int) (*domain.Product, error) {
	product, err := s.productRepo.AdjustStock(ctx, ownerID, productID, delta)
	if err != nil {
		s.LogError(ctx, err, "Failed to adjust stock", slog.String("product_id", productID), slog.Int("delta", delta))
		return nil, err
	}

	s.LogInfo(ctx, "Stock adjusted",
		slog.String("product_id", productID),
		slog.Int("delta", delta),
		slog.Int("stock_quantity", product.StockQuantity))
	return product, nil
}

// DeleteProduct removes a product. Recorded sales keep their frozen line item
// snapshots, so history survives the deletion.
func (s *productService) DeleteProduct(ctx context.Context, ownerID domain.OwnerID, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, ownerID, productID); err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		return err
	}

	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}
