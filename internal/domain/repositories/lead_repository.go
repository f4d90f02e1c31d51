package repositories

import (
	"context"

	"nika-sop.backend/internal/domain/entities"
)

// LeadRepository defines captured-lead data operations
type LeadRepository interface {
	// Create inserts a lead. Returns ErrAlreadyExists for a duplicate email;
	// the existing row is left untouched.
	Create(ctx context.Context, lead *entities.Lead) error
}
