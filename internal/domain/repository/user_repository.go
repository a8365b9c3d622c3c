package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/reviewpulse/sentiment-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Count returns the number of stored users
	Count(ctx context.Context) (int64, error)
}
