package repositories

import (
	"context"

	"gorm.io/gorm"
	"nika-sop.backend/internal/domain/entities"
	"nika-sop.backend/internal/infrastructure/models"
)

// SOPRepository implements generated-document data operations
type SOPRepository struct {
	db *gorm.DB
}

// NewSOPRepository creates a new SOP repository
func NewSOPRepository(db *gorm.DB) *SOPRepository {
	return &SOPRepository{db: db}
}

// Create appends a generated document
func (r *SOPRepository) Create(ctx context.Context, sop *entities.SOP) error {
	m := &models.SOP{
		ID:        sop.ID,
		UserEmail: sop.UserEmail,
		Body:      sop.Body,
		CreatedAt: sop.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// CountByEmail counts stored documents for an identity. The quota is derived
// from this count on every request; no counter is cached anywhere.
func (r *SOPRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SOP{}).
		Where("user_email = ?", email).
		Count(&count).Error
	return count, err
}

// ListByEmail lists documents for an identity, newest first
func (r *SOPRepository) ListByEmail(ctx context.Context, email string) ([]*entities.SOP, error) {
	var sopModels []models.SOP
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&sopModels).Error
	if err != nil {
		return nil, err
	}

	var sops []*entities.SOP
	for _, m := range sopModels {
		sops = append(sops, &entities.SOP{
			ID:        m.ID,
			UserEmail: m.UserEmail,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}
	return sops, nil
}
