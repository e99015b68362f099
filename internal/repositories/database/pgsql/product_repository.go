package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	"github.com/mercapos/mercapos_backend/internal/models"
	"github.com/mercapos/mercapos_backend/internal/utils/mapping"
)

const productColumns = `product_id, owner_id, barcode, name, cost_price, sale_price, stock_quantity, category, low_stock_alert, created_at`

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductRepository creates a new repository for inventory data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{pool: pool}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.OwnerID,
		&m.Barcode,
		&m.Name,
		&m.CostPrice,
		&m.SalePrice,
		&m.StockQuantity,
		&m.Category,
		&m.LowStockAlert,
		&m.CreatedAt,
	)
	return m, err
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ProductID,
		m.OwnerID,
		m.Barcode,
		m.Name,
		m.CostPrice,
		m.SalePrice,
		m.StockQuantity,
		m.Category,
		m.LowStockAlert,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product with barcode %s already exists", apperrors.ErrDuplicate, m.Barcode)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a single product scoped to its owner.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, ownerID domain.OwnerID, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE owner_id = $1 AND product_id = $2;
	`
	m, err := scanProduct(r.pool.QueryRow(ctx, query, ownerID.String(), productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

// FindProducts retrieves the owner's products matching the filter, newest first.
func (r *PgxProductRepository) FindProducts(ctx context.Context, ownerID domain.OwnerID, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE owner_id = $1
	`
	args := []any{ownerID.String()}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR barcode ILIKE $%d)", len(args), len(args))
	}
	if filter.Barcode != "" {
		args = append(args, filter.Barcode)
		query += fmt.Sprintf(" AND barcode = $%d", len(args))
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	ms := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return mapping.ToDomainProducts(ms), nil
}

// UpdateProduct overwrites the mutable fields of an existing product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		UPDATE products
		SET barcode = $3, name = $4, cost_price = $5, sale_price = $6, stock_quantity = $7, category = $8, low_stock_alert = $9
		WHERE owner_id = $1 AND product_id = $2;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.OwnerID,
		m.ProductID,
		m.Barcode,
		m.Name,
		m.CostPrice,
		m.SalePrice,
		m.StockQuantity,
		m.Category,
		m.LowStockAlert,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product with barcode %s already exists", apperrors.ErrDuplicate, m.Barcode)
		}
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustStock applies delta to the stock quantity and recomputes the low-stock
// flag in a single conditional statement. The WHERE guard keeps the quantity
// from ever going negative.
func (r *PgxProductRepository) AdjustStock(ctx context.Context, ownerID domain.OwnerID, productID string, delta int) (*domain.Product, error) {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $3,
		    low_stock_alert = (stock_quantity + $3) < $4
		WHERE owner_id = $1 AND product_id = $2 AND stock_quantity + $3 >= 0
		RETURNING ` + productColumns + `;
	`
	m, err := scanProduct(r.pool.QueryRow(ctx, query, ownerID.String(), productID, delta, domain.LowStockThreshold))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The guard rejected the update; find out whether the product is
			// missing or the delta would overdraw the stock.
			current, findErr := r.FindProductByID(ctx, ownerID, productID)
			if findErr != nil {
				return nil, findErr
			}
			return nil, fmt.Errorf("%w: %s has %d units", apperrors.ErrInsufficientStock, current.Name, current.StockQuantity)
		}
		return nil, fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

// DeleteProduct removes a product, scoped to its owner.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, ownerID domain.OwnerID, productID string) error {
	query := `DELETE FROM products WHERE owner_id = $1 AND product_id = $2;`

	cmdTag, err := r.pool.Exec(ctx, query, ownerID.String(), productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockProductsForUpdate locks the given products FOR UPDATE and returns their
// current state keyed by product ID. Must be called within tx. Rows are locked
// in product_id order so two overlapping carts always acquire locks the same
// way and cannot deadlock each other.
func (r *PgxProductRepository) LockProductsForUpdate(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE owner_id = $1 AND product_id = ANY($2)
		ORDER BY product_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, ownerID.String(), productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products for update: %w", err)
	}
	defer rows.Close()

	productsMap := make(map[string]domain.Product)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked product row: %w", err)
		}
		productsMap[m.ProductID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked product rows: %w", err)
	}

	return productsMap, nil
}

// DecrementStockInTx applies a guarded stock decrement using tx. The rows the
// caller locked earlier keep the guard from racing a concurrent sale.
func (r *PgxProductRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, productID string, quantity int) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $3,
		    low_stock_alert = (stock_quantity - $3) < $4
		WHERE owner_id = $1 AND product_id = $2 AND stock_quantity >= $3;
	`
	cmdTag, err := tx.Exec(ctx, query, ownerID.String(), productID, quantity, domain.LowStockThreshold)
	if err != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrInsufficientStock, productID)
	}
	return nil
}
