package mapping

import (
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	"github.com/mercapos/mercapos_backend/internal/models"
)

// ToModelUser converts a domain user to its database model.
func ToModelUser(u domain.User) models.User {
	return models.User{
		UserID:         u.UserID,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		StoreName:      u.StoreName,
		CurrencySymbol: u.CurrencySymbol,
		CreatedAt:      u.CreatedAt,
	}
}

// ToDomainUser converts a database model to a domain user.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		StoreName:      m.StoreName,
		CurrencySymbol: m.CurrencySymbol,
		CreatedAt:      m.CreatedAt,
	}
}
