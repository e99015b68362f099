package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	"github.com/mercapos/mercapos_backend/internal/models"
	"github.com/mercapos/mercapos_backend/internal/utils/mapping"
)

// PgxReportingRepository serves the dashboard aggregates. Every number is
// computed from the source tables at query time; nothing here is cached or
// denormalized.
type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new read-only repository for reporting.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingReader {
	return &PgxReportingRepository{pool: pool}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingReader
var _ portsrepo.ReportingReader = (*PgxReportingRepository)(nil)

// SalesTotalsSince sums revenue, profit and sale count for sales at or after
// the given instant.
func (r *PgxReportingRepository) SalesTotalsSince(ctx context.Context, ownerID domain.OwnerID, since time.Time) (domain.SalesTotals, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(profit), 0), COUNT(*)
		FROM sales
		WHERE owner_id = $1 AND occurred_at >= $2;
	`
	var totals domain.SalesTotals
	err := r.pool.QueryRow(ctx, query, ownerID.String(), since).Scan(&totals.Revenue, &totals.Profit, &totals.Count)
	if err != nil {
		return domain.SalesTotals{}, fmt.Errorf("failed to aggregate sales totals: %w", err)
	}
	return totals, nil
}

// CountProducts returns the owner's total product count.
func (r *PgxReportingRepository) CountProducts(ctx context.Context, ownerID domain.OwnerID) (int64, error) {
	query := `SELECT COUNT(*) FROM products WHERE owner_id = $1;`

	var count int64
	if err := r.pool.QueryRow(ctx, query, ownerID.String()).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// FindLowStockProducts returns every product below the restock threshold,
// lowest stock first.
func (r *PgxReportingRepository) FindLowStockProducts(ctx context.Context, ownerID domain.OwnerID) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE owner_id = $1 AND stock_quantity < $2
		ORDER BY stock_quantity ASC;
	`
	rows, err := r.pool.Query(ctx, query, ownerID.String(), domain.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	defer rows.Close()

	ms := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan low stock product row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating low stock product rows: %w", err)
	}

	return mapping.ToDomainProducts(ms), nil
}
