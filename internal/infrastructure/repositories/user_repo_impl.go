package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"nika-sop.backend/internal/domain/entities"
	domainerrors "nika-sop.backend/internal/domain/errors"
	"nika-sop.backend/internal/infrastructure/models"
)

// UserRepository implements user account data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:              user.ID,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		IsActive:        user.IsActive,
		ActivationToken: user.ActivationToken.Ptr(),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// Activate marks the token's owner active and clears the token. The WHERE
// clause makes the token single-use: once cleared, the same token matches
// nothing and the call reports ErrNotFound.
func (r *UserRepository) Activate(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("activation_token = ?", token).
		Updates(map[string]interface{}{
			"is_active":        true,
			"activation_token": nil,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		IsActive:        m.IsActive,
		ActivationToken: null.StringFromPtr(m.ActivationToken),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
