package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

// CashSessionSvcFacade manages the drawer state machine:
// Closed -> open -> Open -> close -> Closed (terminal, archived).
type CashSessionSvcFacade interface {
	// OpenSession starts a new drawer session. Fails with
	// apperrors.ErrConflict when one is already open for the owner.
	OpenSession(ctx context.Context, ownerID domain.OwnerID, openedBy string, initialCash decimal.Decimal) (*domain.CashSession, error)

	// CurrentSession returns the open session, or nil when none is open.
	CurrentSession(ctx context.Context, ownerID domain.OwnerID) (*domain.CashSession, error)

	// SettleSale adds a sale amount to the open session's running totals.
	// Skipped silently when no session is open.
	SettleSale(ctx context.Context, ownerID domain.OwnerID, method domain.PaymentMethod, amount decimal.Decimal) error

	// RecordExpense appends an expense to the open session and returns the
	// movement plus the refreshed expected cash.
	RecordExpense(ctx context.Context, ownerID domain.OwnerID, req dto.CreateMovementRequest) (*domain.CashMovement, decimal.Decimal, error)

	// RecordWithdrawal appends a withdrawal to the open session and returns
	// the movement plus the refreshed expected cash.
	RecordWithdrawal(ctx context.Context, ownerID domain.OwnerID, req dto.CreateMovementRequest) (*domain.CashMovement, decimal.Decimal, error)

	// CloseSession reconciles the drawer against the counted cash and closes
	// the session.
	CloseSession(ctx context.Context, ownerID domain.OwnerID, req dto.CloseSessionRequest) (*domain.CashSession, error)

	// ListSessionHistory retrieves closed sessions newest-closed-first.
	ListSessionHistory(ctx context.Context, ownerID domain.OwnerID, limit int) ([]domain.CashSession, error)
}
