package repositories

// RepositoryProvider bundles every repository implementation the service
// layer needs. Constructed once at startup from the shared connection pool.
type RepositoryProvider struct {
	ProductRepo     ProductRepositoryFacade
	SaleRepo        SaleRepositoryFacade
	CashSessionRepo CashSessionRepositoryFacade
	UserRepo        UserRepositoryFacade
	ReportingRepo   ReportingReader
}
