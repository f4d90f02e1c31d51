package repositories

import (
	"context"

	"nika-sop.backend/internal/domain/entities"
)

// SOPRepository defines generated-document data operations
type SOPRepository interface {
	Create(ctx context.Context, sop *entities.SOP) error
	CountByEmail(ctx context.Context, email string) (int64, error)
	ListByEmail(ctx context.Context, email string) ([]*entities.SOP, error)
}
