package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSessionStatus is the lifecycle state of a drawer session.
type CashSessionStatus string

const (
	SessionOpen   CashSessionStatus = "open"
	SessionClosed CashSessionStatus = "closed"
)

// MovementKind distinguishes the two kinds of cash taken out of an open
// drawer.
type MovementKind string

const (
	MovementExpense    MovementKind = "expense"
	MovementWithdrawal MovementKind = "withdrawal"
)

// CashMovement is an expense or withdrawal recorded against an open session.
type CashMovement struct {
	MovementID  string          `json:"id"`
	SessionID   string          `json:"-"`
	Kind        MovementKind    `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"date"`
}

// CashSession is one open-to-close cycle of the cash drawer. At most one
// session per owner may be open at any time; once closed it is immutable
// history. ExpectedCash is derived state: RecomputeExpectedCash must run after
// every mutation.
type CashSession struct {
	SessionID            string            `json:"id"`
	OwnerID              OwnerID           `json:"-"`
	OpenedBy             string            `json:"opened_by"`
	OpenedAt             time.Time         `json:"opened_at"`
	ClosedAt             *time.Time        `json:"closed_at"`
	InitialCash          decimal.Decimal   `json:"initial_cash"`
	CashSales            decimal.Decimal   `json:"cash_sales"`
	CardSales            decimal.Decimal   `json:"card_sales"`
	Expenses             []CashMovement    `json:"expenses"`
	Withdrawals          []CashMovement    `json:"withdrawals"`
	ExpectedCash         decimal.Decimal   `json:"expected_cash"`
	ActualCash           *decimal.Decimal  `json:"actual_cash"`
	Difference           *decimal.Decimal  `json:"difference"`
	DifferencePercentage *decimal.Decimal  `json:"difference_percentage"`
	ClosingNotes         string            `json:"closing_notes"`
	ClosingPhotoURL      string            `json:"closing_photo_url"`
	Status               CashSessionStatus `json:"status"`
}

// IsOpen reports whether the session is still trading.
func (s *CashSession) IsOpen() bool {
	return s.Status == SessionOpen
}

// RecomputeExpectedCash re-derives the cash the drawer should contain:
// initial float plus cash sales, minus every expense and withdrawal. This is
// the only place the formula lives.
func (s *CashSession) RecomputeExpectedCash() {
	expected := s.InitialCash.Add(s.CashSales)
	for _, e := range s.Expenses {
		expected = expected.Sub(e.Amount)
	}
	for _, w := range s.Withdrawals {
		expected = expected.Sub(w.Amount)
	}
	s.ExpectedCash = expected
}

// ApplySale adds a settled sale amount to the matching running total and
// refreshes the expected cash.
func (s *CashSession) ApplySale(method PaymentMethod, amount decimal.Decimal) {
	if method == PaymentCash {
		s.CashSales = s.CashSales.Add(amount)
	} else {
		s.CardSales = s.CardSales.Add(amount)
	}
	s.RecomputeExpectedCash()
}

// AppendMovement records an expense or withdrawal and refreshes the expected
// cash.
func (s *CashSession) AppendMovement(m CashMovement) {
	switch m.Kind {
	case MovementWithdrawal:
		s.Withdrawals = append(s.Withdrawals, m)
	default:
		s.Expenses = append(s.Expenses, m)
	}
	s.RecomputeExpectedCash()
}

// Close reconciles the drawer against the counted cash and transitions the
// session to its terminal state. The variance is recorded, never rejected;
// whether a large variance demands explanatory notes is the caller's policy.
func (s *CashSession) Close(actualCash decimal.Decimal, notes, photoURL string, closedAt time.Time) {
	difference := actualCash.Sub(s.ExpectedCash)
	percentage := decimal.Zero
	if s.ExpectedCash.IsPositive() {
		percentage = difference.Div(s.ExpectedCash).Mul(decimal.NewFromInt(100))
	}

	s.ActualCash = &actualCash
	s.Difference = &difference
	s.DifferencePercentage = &percentage
	s.ClosingNotes = notes
	s.ClosingPhotoURL = photoURL
	s.ClosedAt = &closedAt
	s.Status = SessionClosed
}
