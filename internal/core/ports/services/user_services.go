package services

import (
	"context"

	"github.com/mercapos/mercapos_backend/internal/core/domain"
	"github.com/mercapos/mercapos_backend/internal/dto"
)

// UserSvcFacade manages store accounts.
type UserSvcFacade interface {
	// CreateUser registers a new store account.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByEmail retrieves a user by login email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
