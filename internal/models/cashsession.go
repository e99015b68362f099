package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSession mirrors the cash_sessions table. The nullable reconciliation
// columns stay nil until close.
type CashSession struct {
	SessionID            string           `db:"session_id"`
	OwnerID              string           `db:"owner_id"`
	OpenedBy             string           `db:"opened_by"`
	OpenedAt             time.Time        `db:"opened_at"`
	ClosedAt             *time.Time       `db:"closed_at"`
	InitialCash          decimal.Decimal  `db:"initial_cash"`
	CashSales            decimal.Decimal  `db:"cash_sales"`
	CardSales            decimal.Decimal  `db:"card_sales"`
	ExpectedCash         decimal.Decimal  `db:"expected_cash"`
	ActualCash           *decimal.Decimal `db:"actual_cash"`
	Difference           *decimal.Decimal `db:"difference"`
	DifferencePercentage *decimal.Decimal `db:"difference_percentage"`
	ClosingNotes         string           `db:"closing_notes"`
	ClosingPhotoURL      string           `db:"closing_photo_url"`
	Status               string           `db:"status"`
}

// CashMovement mirrors the cash_movements table (expenses and withdrawals).
type CashMovement struct {
	MovementID  string          `db:"movement_id"`
	SessionID   string          `db:"session_id"`
	Kind        string          `db:"kind"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
