package services

import (
	"context"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

// ProductReaderSvc defines read operations over the inventory ledger
type ProductReaderSvc interface {
	// ListProducts retrieves the owner's products matching the filter,
	// newest-created-first.
	ListProducts(ctx context.Context, ownerID domain.OwnerID, filter portsrepo.ProductFilter) ([]domain.Product, error)

	// GetProductByID retrieves a single product.
	GetProductByID(ctx context.Context, ownerID domain.OwnerID, productID string) (*domain.Product, error)
}

// ProductWriterSvc defines write operations over the inventory ledger
type ProductWriterSvc interface {
	// CreateProduct registers a new product.
	CreateProduct(ctx context.Context, ownerID domain.OwnerID, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct applies a partial update; fields absent from the request
	// are preserved.
	UpdateProduct(ctx context.Context, ownerID domain.OwnerID, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// AdjustStock atomically applies delta (negative for a sale) to the
	// product's stock.
	AdjustStock(ctx context.Context, ownerID domain.OwnerID, productID string, delta int) (*domain.Product, error)

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, ownerID domain.OwnerID, productID string) error
}

// ProductSvcFacade combines all inventory service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
