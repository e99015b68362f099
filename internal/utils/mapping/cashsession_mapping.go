package mapping

import (
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	"github.com/mercapos/mercapos_backend/internal/models"
)

// ToModelCashSession converts a domain cash session to its database model.
func ToModelCashSession(s domain.CashSession) models.CashSession {
	return models.CashSession{
		SessionID:            s.SessionID,
		OwnerID:              s.OwnerID.String(),
		OpenedBy:             s.OpenedBy,
		OpenedAt:             s.OpenedAt,
		ClosedAt:             s.ClosedAt,
		InitialCash:          s.InitialCash,
		CashSales:            s.CashSales,
		CardSales:            s.CardSales,
		ExpectedCash:         s.ExpectedCash,
		ActualCash:           s.ActualCash,
		Difference:           s.Difference,
		DifferencePercentage: s.DifferencePercentage,
		ClosingNotes:         s.ClosingNotes,
		ClosingPhotoURL:      s.ClosingPhotoURL,
		Status:               string(s.Status),
	}
}

// ToDomainCashSession converts a session row and its movements back to the
// domain type, splitting movements into expenses and withdrawals.
func ToDomainCashSession(m models.CashSession, movements []models.CashMovement) domain.CashSession {
	s := domain.CashSession{
		SessionID:            m.SessionID,
		OwnerID:              domain.OwnerID(m.OwnerID),
		OpenedBy:             m.OpenedBy,
		OpenedAt:             m.OpenedAt,
		ClosedAt:             m.ClosedAt,
		InitialCash:          m.InitialCash,
		CashSales:            m.CashSales,
		CardSales:            m.CardSales,
		ExpectedCash:         m.ExpectedCash,
		ActualCash:           m.ActualCash,
		Difference:           m.Difference,
		DifferencePercentage: m.DifferencePercentage,
		ClosingNotes:         m.ClosingNotes,
		ClosingPhotoURL:      m.ClosingPhotoURL,
		Status:               domain.CashSessionStatus(m.Status),
	}
	for _, mv := range movements {
		dm := ToDomainCashMovement(mv)
		if dm.Kind == domain.MovementWithdrawal {
			s.Withdrawals = append(s.Withdrawals, dm)
		} else {
			s.Expenses = append(s.Expenses, dm)
		}
	}
	return s
}

// ToModelCashMovement converts a domain cash movement to its database model.
func ToModelCashMovement(m domain.CashMovement) models.CashMovement {
	return models.CashMovement{
		MovementID:  m.MovementID,
		SessionID:   m.SessionID,
		Kind:        string(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainCashMovement converts a movement row back to the domain type.
func ToDomainCashMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		MovementID:  m.MovementID,
		SessionID:   m.SessionID,
		Kind:        domain.MovementKind(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
