package repositories

import (
	"context"

	"nika-sop.backend/internal/domain/entities"
)

// UserRepository defines user account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// Activate sets the active flag and clears the activation token. Returns
	// ErrNotFound when no inactive user holds the token (single-use semantics).
	Activate(ctx context.Context, token string) error
}
