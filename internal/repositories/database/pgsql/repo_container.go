package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto the shared pool. The sale
// repository receives the product and session repositories so its transaction
// can span stock decrement and drawer settlement.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	productRepo := newPgxProductRepository(dbPool)
	cashSessionRepo := newPgxCashSessionRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool, productRepo, cashSessionRepo)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProductRepo:     productRepo,
		SaleRepo:        saleRepo,
		CashSessionRepo: cashSessionRepo,
		UserRepo:        userRepo,
		ReportingRepo:   reportingRepo,
	}
}
