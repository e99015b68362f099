package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// ProductFilter narrows a product listing. Search matches name or barcode
// case-insensitively as a substring; Barcode matches exactly. Both may be
// combined.
type ProductFilter struct {
	Search  string
	Barcode string
}

// ProductReader defines read operations for inventory data
type ProductReader interface {
	// FindProducts retrieves an owner's products matching the filter,
	// newest-created-first.
	FindProducts(ctx context.Context, ownerID domain.OwnerID, filter ProductFilter) ([]domain.Product, error)

	// FindProductByID retrieves a single product scoped to the owner.
	FindProductByID(ctx context.Context, ownerID domain.OwnerID, productID string) (*domain.Product, error)
}

// ProductWriter defines write operations for inventory data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct overwrites an existing product row, scoped to its owner.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// AdjustStock atomically applies delta to the stock quantity and recomputes
	// the low-stock flag in the same statement. The update is conditional: a
	// delta that would drive the quantity negative fails with
	// apperrors.ErrInsufficientStock and mutates nothing.
	AdjustStock(ctx context.Context, ownerID domain.OwnerID, productID string, delta int) (*domain.Product, error)

	// DeleteProduct removes a product, scoped to its owner.
	DeleteProduct(ctx context.Context, ownerID domain.OwnerID, productID string) error
}

// ProductTxLocker exposes the row-locking operations the sale repository needs
// to decrement stock safely inside its own transaction.
type ProductTxLocker interface {
	// LockProductsForUpdate locks the given products FOR UPDATE and returns
	// their current state keyed by product ID. Must be called within tx.
	LockProductsForUpdate(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, productIDs []string) (map[string]domain.Product, error)

	// DecrementStockInTx applies a guarded stock decrement using tx.
	DecrementStockInTx(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, productID string, quantity int) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductTxLocker
}
