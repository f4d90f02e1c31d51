package repositories

import (
	"context"

	"gorm.io/gorm"
	"nika-sop.backend/internal/domain/entities"
	domainerrors "nika-sop.backend/internal/domain/errors"
	"nika-sop.backend/internal/infrastructure/models"
)

// LeadRepository implements captured-lead data operations
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a lead. Duplicate emails are rejected without touching the
// existing row.
func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Where("email = ?", lead.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domainerrors.ErrAlreadyExists
	}

	m := &models.Lead{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		CreatedAt: lead.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
