package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// CashSessionReader defines read operations for drawer sessions
type CashSessionReader interface {
	// FindOpenSession retrieves the single open session for the owner, or
	// apperrors.ErrNotFound when none is open.
	FindOpenSession(ctx context.Context, ownerID domain.OwnerID) (*domain.CashSession, error)

	// ListClosedSessions retrieves closed sessions newest-closed-first.
	ListClosedSessions(ctx context.Context, ownerID domain.OwnerID, limit int) ([]domain.CashSession, error)
}

// CashSessionWriter defines write operations for drawer sessions. Every
// mutation serializes on the open session row, so overlapping requests cannot
// interleave their read-of-totals with their write.
type CashSessionWriter interface {
	// SaveSession persists a freshly opened session. Fails with
	// apperrors.ErrConflict when the owner already has an open session.
	SaveSession(ctx context.Context, session domain.CashSession) error

	// AppendMovement records an expense or withdrawal against the open session
	// and returns the session with its expected cash recomputed. Fails with
	// apperrors.ErrConflict when no session is open.
	AppendMovement(ctx context.Context, ownerID domain.OwnerID, movement domain.CashMovement) (*domain.CashSession, error)

	// SettleSale adds a sale amount to the open session's running totals. When
	// no session is open the settlement is skipped and nil is returned.
	SettleSale(ctx context.Context, ownerID domain.OwnerID, method domain.PaymentMethod, amount decimal.Decimal) error

	// CloseSession reconciles and closes the open session. Fails with
	// apperrors.ErrConflict when no session is open.
	CloseSession(ctx context.Context, ownerID domain.OwnerID, actualCash decimal.Decimal, notes, photoURL string) (*domain.CashSession, error)
}

// CashSessionSettler is the transactional settlement hook the sale repository
// uses so that stock decrement, sale insert and drawer settlement commit or
// roll back together.
type CashSessionSettler interface {
	// SettleSaleInTx behaves like SettleSale but joins the caller's
	// transaction.
	SettleSaleInTx(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, method domain.PaymentMethod, amount decimal.Decimal) error
}

// CashSessionRepositoryFacade combines all session-related repository interfaces
type CashSessionRepositoryFacade interface {
	CashSessionReader
	CashSessionWriter
	CashSessionSettler
}
