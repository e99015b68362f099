package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	"github.com/mercapos/mercapos_backend/internal/models"
	"github.com/mercapos/mercapos_backend/internal/utils/mapping"
)

const sessionColumns = `session_id, owner_id, opened_by, opened_at, closed_at, initial_cash, cash_sales, card_sales, expected_cash, actual_cash, difference, difference_percentage, closing_notes, closing_photo_url, status`

type PgxCashSessionRepository struct {
	BaseRepository
}

// newPgxCashSessionRepository creates a new repository for drawer sessions.
func newPgxCashSessionRepository(pool *pgxpool.Pool) portsrepo.CashSessionRepositoryFacade {
	return &PgxCashSessionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCashSessionRepository implements portsrepo.CashSessionRepositoryFacade
var _ portsrepo.CashSessionRepositoryFacade = (*PgxCashSessionRepository)(nil)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so session loading
// helpers work inside and outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func scanSession(row pgx.Row) (models.CashSession, error) {
	var m models.CashSession
	err := row.Scan(
		&m.SessionID,
		&m.OwnerID,
		&m.OpenedBy,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.InitialCash,
		&m.CashSales,
		&m.CardSales,
		&m.ExpectedCash,
		&m.ActualCash,
		&m.Difference,
		&m.DifferencePercentage,
		&m.ClosingNotes,
		&m.ClosingPhotoURL,
		&m.Status,
	)
	return m, err
}

func (r *PgxCashSessionRepository) loadMovements(ctx context.Context, q querier, sessionID string) ([]models.CashMovement, error) {
	query := `
		SELECT movement_id, session_id, kind, amount, description, created_at
		FROM cash_movements
		WHERE session_id = $1
		ORDER BY created_at, movement_id;
	`
	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	movements := []models.CashMovement{}
	for rows.Next() {
		var m models.CashMovement
		if err := rows.Scan(&m.MovementID, &m.SessionID, &m.Kind, &m.Amount, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}
	return movements, nil
}

// lockOpenSession locks the owner's open session row FOR UPDATE so that
// overlapping mutations serialize instead of interleaving their totals.
// Returns pgx.ErrNoRows unchanged when no session is open.
func (r *PgxCashSessionRepository) lockOpenSession(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID) (domain.CashSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM cash_sessions
		WHERE owner_id = $1 AND status = 'open'
		FOR UPDATE;
	`
	m, err := scanSession(tx.QueryRow(ctx, query, ownerID.String()))
	if err != nil {
		return domain.CashSession{}, err
	}
	movements, err := r.loadMovements(ctx, tx, m.SessionID)
	if err != nil {
		return domain.CashSession{}, err
	}
	return mapping.ToDomainCashSession(m, movements), nil
}

// SaveSession persists a freshly opened session. The partial unique index on
// open sessions turns a double-open into a conflict.
func (r *PgxCashSessionRepository) SaveSession(ctx context.Context, session domain.CashSession) error {
	m := mapping.ToModelCashSession(session)

	query := `
		INSERT INTO cash_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SessionID,
		m.OwnerID,
		m.OpenedBy,
		m.OpenedAt,
		m.ClosedAt,
		m.InitialCash,
		m.CashSales,
		m.CardSales,
		m.ExpectedCash,
		m.ActualCash,
		m.Difference,
		m.DifferencePercentage,
		m.ClosingNotes,
		m.ClosingPhotoURL,
		m.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: a cash session is already open", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to save cash session %s: %w", m.SessionID, err)
	}
	return nil
}

// FindOpenSession retrieves the single open session for the owner.
func (r *PgxCashSessionRepository) FindOpenSession(ctx context.Context, ownerID domain.OwnerID) (*domain.CashSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM cash_sessions
		WHERE owner_id = $1 AND status = 'open';
	`
	m, err := scanSession(r.Pool.QueryRow(ctx, query, ownerID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}
	movements, err := r.loadMovements(ctx, r.Pool, m.SessionID)
	if err != nil {
		return nil, err
	}
	session := mapping.ToDomainCashSession(m, movements)
	return &session, nil
}

// ListClosedSessions retrieves closed sessions newest-closed-first.
func (r *PgxCashSessionRepository) ListClosedSessions(ctx context.Context, ownerID domain.OwnerID, limit int) ([]domain.CashSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM cash_sessions
		WHERE owner_id = $1 AND status = 'closed'
		ORDER BY closed_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query closed sessions: %w", err)
	}
	defer rows.Close()

	ms := []models.CashSession{}
	for rows.Next() {
		m, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	sessions := make([]domain.CashSession, 0, len(ms))
	for _, m := range ms {
		movements, err := r.loadMovements(ctx, r.Pool, m.SessionID)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, mapping.ToDomainCashSession(m, movements))
	}
	return sessions, nil
}

// AppendMovement records an expense or withdrawal against the open session and
// returns the session with its expected cash recomputed.
func (r *PgxCashSessionRepository) AppendMovement(ctx context.Context, ownerID domain.OwnerID, movement domain.CashMovement) (*domain.CashSession, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	session, err := r.lockOpenSession(ctx, tx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no open cash session", apperrors.ErrConflict)
		}
		return nil, err
	}

	movement.SessionID = session.SessionID
	session.AppendMovement(movement)

	mv := mapping.ToModelCashMovement(movement)
	insertQuery := `
		INSERT INTO cash_movements (movement_id, session_id, kind, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, insertQuery, mv.MovementID, mv.SessionID, mv.Kind, mv.Amount, mv.Description, mv.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert cash movement: %w", err)
	}

	updateQuery := `UPDATE cash_sessions SET expected_cash = $2 WHERE session_id = $1;`
	if _, err := tx.Exec(ctx, updateQuery, session.SessionID, session.ExpectedCash); err != nil {
		return nil, fmt.Errorf("failed to update expected cash for session %s: %w", session.SessionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &session, nil
}

// SettleSale adds a sale amount to the open session's running totals. When no
// session is open the settlement is skipped.
func (r *PgxCashSessionRepository) SettleSale(ctx context.Context, ownerID domain.OwnerID, method domain.PaymentMethod, amount decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if err := r.SettleSaleInTx(ctx, tx, ownerID, method, amount); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SettleSaleInTx behaves like SettleSale but joins the caller's transaction,
// so a sale's stock decrement and drawer settlement commit together.
func (r *PgxCashSessionRepository) SettleSaleInTx(ctx context.Context, tx pgx.Tx, ownerID domain.OwnerID, method domain.PaymentMethod, amount decimal.Decimal) error {
	session, err := r.lockOpenSession(ctx, tx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Sales are legal without an open drawer; nothing to settle.
			return nil
		}
		return err
	}

	session.ApplySale(method, amount)

	query := `
		UPDATE cash_sessions
		SET cash_sales = $2, card_sales = $3, expected_cash = $4
		WHERE session_id = $1;
	`
	if _, err := tx.Exec(ctx, query, session.SessionID, session.CashSales, session.CardSales, session.ExpectedCash); err != nil {
		return fmt.Errorf("failed to settle sale on session %s: %w", session.SessionID, err)
	}
	return nil
}

// CloseSession reconciles the open session against the counted cash and
// transitions it to closed.
func (r *PgxCashSessionRepository) CloseSession(ctx context.Context, ownerID domain.OwnerID, actualCash decimal.Decimal, notes, photoURL string) (*domain.CashSession, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	session, err := r.lockOpenSession(ctx, tx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no open cash session", apperrors.ErrConflict)
		}
		return nil, err
	}

	session.Close(actualCash, notes, photoURL, time.Now().UTC())

	query := `
		UPDATE cash_sessions
		SET closed_at = $2, actual_cash = $3, difference = $4, difference_percentage = $5, closing_notes = $6, closing_photo_url = $7, status = $8
		WHERE session_id = $1;
	`
	_, err = tx.Exec(ctx, query,
		session.SessionID,
		session.ClosedAt,
		session.ActualCash,
		session.Difference,
		session.DifferencePercentage,
		session.ClosingNotes,
		session.ClosingPhotoURL,
		string(session.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to close session %s: %w", session.SessionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &session, nil
}
