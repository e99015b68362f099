package dto

import (
	"time"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
)

// RegisterRequest defines the data needed to create a store account.
type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	StoreName      string `json:"store_name" binding:"required"`
	CurrencySymbol string `json:"currency_symbol"` // Optional, defaults to "$"
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	StoreName      string    `json:"store_name"`
	CurrencySymbol string    `json:"currency_symbol"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.UserID,
		Email:          u.Email,
		StoreName:      u.StoreName,
		CurrencySymbol: u.CurrencySymbol,
		CreatedAt:      u.CreatedAt,
	}
}
