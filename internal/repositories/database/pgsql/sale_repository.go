package pgsql

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	"github.com/mercapos/mercapos_backend/internal/models"
	"github.com/mercapos/mercapos_backend/internal/utils/mapping"
)

const saleColumns = `sale_id, owner_id, total_amount, profit, payment_method, amount_received, change_given, occurred_at`

// PgxSaleRepository persists sales. It holds the product locker and the
// session settler so a sale's stock decrement and drawer settlement share its
// transaction.
type PgxSaleRepository struct {
	BaseRepository
	products portsrepo.ProductTxLocker
	sessions portsrepo.CashSessionSettler
}

// newPgxSaleRepository creates a new repository for sale data.
func newPgxSaleRepository(pool *pgxpool.Pool, products portsrepo.ProductTxLocker, sessions portsrepo.CashSessionSettler) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		products:       products,
		sessions:       sessions,
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSale persists the sale, decrements stock for every line item and settles
// the owner's open cash session within a single transaction. Stock is
// re-checked against the locked rows, so a concurrent sale that drained the
// shelf between validation and commit rolls everything back.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	locked, err := r.products.LockProductsForUpdate(ctx, tx, sale.OwnerID, saleProductIDs(sale.Items))
	if err != nil {
		return err
	}

	for _, item := range sale.Items {
		product, ok := locked[item.ProductID]
		if !ok {
			return fmt.Errorf("%w: product %s not found", apperrors.ErrNotFound, item.ProductID)
		}
		if product.StockQuantity < item.Quantity {
			return fmt.Errorf("%w: %s has %d units", apperrors.ErrInsufficientStock, product.Name, product.StockQuantity)
		}
		if err := r.products.DecrementStockInTx(ctx, tx, sale.OwnerID, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}

	if err := r.insertSaleInTx(ctx, tx, sale); err != nil {
		return err
	}

	if err := r.sessions.SettleSaleInTx(ctx, tx, sale.OwnerID, sale.PaymentMethod, sale.TotalAmount); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// saleProductIDs returns the distinct product IDs of a cart in sorted order.
// Sorting here and ORDER BY in the lock query keep the lock acquisition order
// identical for overlapping carts regardless of how the items were scanned.
func saleProductIDs(items []domain.SaleLineItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		ids = append(ids, item.ProductID)
	}
	sort.Strings(ids)
	return ids
}

func (r *PgxSaleRepository) insertSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)

	headerQuery := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, headerQuery,
		m.SaleID,
		m.OwnerID,
		m.TotalAmount,
		m.Profit,
		m.PaymentMethod,
		m.AmountReceived,
		m.ChangeGiven,
		m.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale %s: %w", m.SaleID, err)
	}

	itemQuery := `
		INSERT INTO sale_items (sale_id, position, product_id, product_name, quantity, price_at_sale, cost_at_sale)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, item := range mapping.ToModelSaleItems(sale) {
		batch.Queue(itemQuery, item.SaleID, item.Position, item.ProductID, item.ProductName, item.Quantity, item.PriceAtSale, item.CostAtSale)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to insert sale item %d for sale %s: %w", i, m.SaleID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close sale item batch: %w", err)
	}
	return batchErr
}

// FindSales retrieves the owner's sales newest-first within the filter window.
func (r *PgxSaleRepository) FindSales(ctx context.Context, ownerID domain.OwnerID, filter portsrepo.SaleFilter) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE owner_id = $1
	`
	args := []any{ownerID.String()}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND occurred_at < $%d", len(args))
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	headers := []models.Sale{}
	for rows.Next() {
		var m models.Sale
		err := rows.Scan(
			&m.SaleID,
			&m.OwnerID,
			&m.TotalAmount,
			&m.Profit,
			&m.PaymentMethod,
			&m.AmountReceived,
			&m.ChangeGiven,
			&m.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	itemsBySale, err := r.findSaleItems(ctx, headers)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0, len(headers))
	for _, m := range headers {
		sales = append(sales, mapping.ToDomainSale(m, itemsBySale[m.SaleID]))
	}
	return sales, nil
}

func (r *PgxSaleRepository) findSaleItems(ctx context.Context, headers []models.Sale) (map[string][]models.SaleItem, error) {
	if len(headers) == 0 {
		return map[string][]models.SaleItem{}, nil
	}

	saleIDs := make([]string, 0, len(headers))
	for _, h := range headers {
		saleIDs = append(saleIDs, h.SaleID)
	}

	query := `
		SELECT sale_id, position, product_id, product_name, quantity, price_at_sale, cost_at_sale
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY sale_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	itemsBySale := make(map[string][]models.SaleItem)
	for rows.Next() {
		var item models.SaleItem
		err := rows.Scan(
			&item.SaleID,
			&item.Position,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.PriceAtSale,
			&item.CostAtSale,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		itemsBySale[item.SaleID] = append(itemsBySale[item.SaleID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", err)
	}
	return itemsBySale, nil
}
