package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portsrepo "github.com/mercapos/mercapos_backend/internal/core/ports/repositories"
	portssvc "github.com/mercapos/mercapos_backend/internal/core/ports/services"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

// defaultHistoryLimit bounds a session history listing when the caller does
// not ask for a specific page size.
const defaultHistoryLimit = 30

type cashSessionService struct {
	BaseService
	sessionRepo portsrepo.CashSessionRepositoryFacade
}

// NewCashSessionService creates the drawer session manager.
func NewCashSessionService(sessionRepo portsrepo.CashSessionRepositoryFacade) portssvc.CashSessionSvcFacade {
	return &cashSessionService{sessionRepo: sessionRepo}
}

var _ portssvc.CashSessionSvcFacade = (*cashSessionService)(nil)

// OpenSession starts a new drawer session with the counted opening float.
func (s *cashSessionService) OpenSession(ctx context.Context, ownerID domain.OwnerID, openedBy string, initialCash decimal.Decimal) (*domain.CashSession, error) {
	if initialCash.IsNegative() {
		return nil, fmt.Errorf("%w: initial cash must not be negative", apperrors.ErrValidation)
	}

	session := domain.CashSession{
		SessionID:   uuid.NewString(),
		OwnerID:     ownerID,
		OpenedBy:    openedBy,
		OpenedAt:    time.Now().UTC(),
		InitialCash: initialCash,
		CashSales:   decimal.Zero,
		CardSales:   decimal.Zero,
		Status:      domain.SessionOpen,
	}
	session.RecomputeExpectedCash()

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to open cash session")
		return nil, err
	}

	s.LogInfo(ctx, "Cash session opened",
		slog.String("session_id", session.SessionID),
		slog.String("initial_cash", initialCash.String()))
	return &session, nil
}

// CurrentSession returns the open session, or nil when none is open.
func (s *cashSessionService) CurrentSession(ctx context.Context, ownerID domain.OwnerID) (*domain.CashSession, error) {
	session, err := s.sessionRepo.FindOpenSession(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load current cash session")
		return nil, err
	}
	return session, nil
}

// SettleSale adds a sale amount to the open session's running totals. Sales
// without an open drawer are legal, so a missing session is not an error.
func (s *cashSessionService) SettleSale(ctx context.Context, ownerID domain.OwnerID, method domain.PaymentMethod, amount decimal.Decimal) error {
	return s.sessionRepo.SettleSale(ctx, ownerID, method, amount)
}

// RecordExpense appends an expense to the open session.
func (s *cashSessionService) RecordExpense(ctx context.Context, ownerID domain.OwnerID, req dto.CreateMovementRequest) (*domain.CashMovement, decimal.Decimal, error) {
	return s.recordMovement(ctx, ownerID, domain.MovementExpense, req)
}

// RecordWithdrawal appends a withdrawal to the open session.
func (s *cashSessionService) RecordWithdrawal(ctx context.Context, ownerID domain.OwnerID, req dto.CreateMovementRequest) (*domain.CashMovement, decimal.Decimal, error) {
	return s.recordMovement(ctx, ownerID, domain.MovementWithdrawal, req)
}

func (s *cashSessionService) recordMovement(ctx context.Context, ownerID domain.OwnerID, kind domain.MovementKind, req dto.CreateMovementRequest) (*domain.CashMovement, decimal.Decimal, error) {
	if !req.Amount.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	movement := domain.CashMovement{
		MovementID:  uuid.NewString(),
		Kind:        kind,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	session, err := s.sessionRepo.AppendMovement(ctx, ownerID, movement)
	if err != nil {
		s.LogError(ctx, err, "Failed to record cash movement", slog.String("kind", string(kind)))
		return nil, decimal.Zero, err
	}
	movement.SessionID = session.SessionID

	s.LogInfo(ctx, "Cash movement recorded",
		slog.String("session_id", session.SessionID),
		slog.String("kind", string(kind)),
		slog.String("amount", req.Amount.String()))
	return &movement, session.ExpectedCash, nil
}

// CloseSession reconciles the drawer against the counted cash and closes the
// session. Any variance is recorded as-is; the engine never rejects a close
// over a discrepancy.
func (s *cashSessionService) CloseSession(ctx context.Context, ownerID domain.OwnerID, req dto.CloseSessionRequest) (*domain.CashSession, error) {
	if req.ActualCash.IsNegative() {
		return nil, fmt.Errorf("%w: actual cash must not be negative", apperrors.ErrValidation)
	}

	session, err := s.sessionRepo.CloseSession(ctx, ownerID, *req.ActualCash, req.ClosingNotes, req.ClosingPhotoURL)
	if err != nil {
		s.LogError(ctx, err, "Failed to close cash session")
		return nil, err
	}

	s.LogInfo(ctx, "Cash session closed",
		slog.String("session_id", session.SessionID),
		slog.String("expected_cash", session.ExpectedCash.String()),
		slog.String("actual_cash", session.ActualCash.String()))
	return session, nil
}

// ListSessionHistory retrieves closed sessions newest-closed-first.
func (s *cashSessionService) ListSessionHistory(ctx context.Context, ownerID domain.OwnerID, limit int) ([]domain.CashSession, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	sessions, err := s.sessionRepo.ListClosedSessions(ctx, ownerID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list session history")
		return nil, err
	}
	return sessions, nil
}
