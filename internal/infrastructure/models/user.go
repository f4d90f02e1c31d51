package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	IsActive        bool      `gorm:"not null;default:false"`
	ActivationToken *string   `gorm:"type:varchar(64);index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
