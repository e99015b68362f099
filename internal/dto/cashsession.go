package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// OpenSessionRequest defines the data needed to open a drawer session.
// InitialCash is a pointer so an explicit 0 float passes the presence check.
type OpenSessionRequest struct {
	InitialCash *decimal.Decimal `json:"initial_cash" binding:"required"`
}

// CreateMovementRequest defines an expense or withdrawal against the open
// session.
type CreateMovementRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// CloseSessionRequest defines the data needed to close and reconcile the open
// session.
type CloseSessionRequest struct {
	ActualCash      *decimal.Decimal `json:"actual_cash" binding:"required"`
	ClosingNotes    string           `json:"closing_notes"`
	ClosingPhotoURL string           `json:"closing_photo_url"`
}

// CashMovementResponse defines the data returned for an expense/withdrawal.
type CashMovementResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// MovementResultResponse pairs a recorded movement with the drawer's refreshed
// expected cash.
type MovementResultResponse struct {
	Movement     CashMovementResponse `json:"movement"`
	ExpectedCash decimal.Decimal      `json:"expected_cash"`
}

// CashSessionResponse defines the data returned for a drawer session.
type CashSessionResponse struct {
	ID                   string                 `json:"id"`
	OpenedBy             string                 `json:"opened_by"`
	OpenedAt             time.Time              `json:"opened_at"`
	ClosedAt             *time.Time             `json:"closed_at"`
	InitialCash          decimal.Decimal        `json:"initial_cash"`
	CashSales            decimal.Decimal        `json:"cash_sales"`
	CardSales            decimal.Decimal        `json:"card_sales"`
	Expenses             []CashMovementResponse `json:"expenses"`
	Withdrawals          []CashMovementResponse `json:"withdrawals"`
	ExpectedCash         decimal.Decimal        `json:"expected_cash"`
	ActualCash           *decimal.Decimal       `json:"actual_cash"`
	Difference           *decimal.Decimal       `json:"difference"`
	DifferencePercentage *decimal.Decimal       `json:"difference_percentage"`
	ClosingNotes         string                 `json:"closing_notes"`
	ClosingPhotoURL      string                 `json:"closing_photo_url"`
	Status               string                 `json:"status"`
}

// ToCashMovementResponse converts a domain.CashMovement to its DTO
func ToCashMovementResponse(m *domain.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		ID:          m.MovementID,
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.CreatedAt,
	}
}

func toMovementResponses(movements []domain.CashMovement) []CashMovementResponse {
	res := make([]CashMovementResponse, len(movements))
	for i, m := range movements {
		res[i] = ToCashMovementResponse(&m)
	}
	return res
}

// ToCashSessionResponse converts a domain.CashSession to CashSessionResponse DTO
func ToCashSessionResponse(s *domain.CashSession) CashSessionResponse {
	return CashSessionResponse{
		ID:                   s.SessionID,
		OpenedBy:             s.OpenedBy,
		OpenedAt:             s.OpenedAt,
		ClosedAt:             s.ClosedAt,
		InitialCash:          s.InitialCash,
		CashSales:            s.CashSales,
		CardSales:            s.CardSales,
		Expenses:             toMovementResponses(s.Expenses),
		Withdrawals:          toMovementResponses(s.Withdrawals),
		ExpectedCash:         s.ExpectedCash,
		ActualCash:           s.ActualCash,
		Difference:           s.Difference,
		DifferencePercentage: s.DifferencePercentage,
		ClosingNotes:         s.ClosingNotes,
		ClosingPhotoURL:      s.ClosingPhotoURL,
		Status:               string(s.Status),
	}
}

// ToListCashSessionResponse converts a slice of domain.CashSession to response DTOs
func ToListCashSessionResponse(sessions []domain.CashSession) []CashSessionResponse {
	res := make([]CashSessionResponse, len(sessions))
	for i, s := range sessions {
		res[i] = ToCashSessionResponse(&s)
	}
	return res
}
