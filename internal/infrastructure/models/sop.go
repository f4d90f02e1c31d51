package models

import (
	"time"

	"github.com/google/uuid"
)

type SOP struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserEmail string    `gorm:"type:varchar(255);index;not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (SOP) TableName() string {
	return "user_sops"
}
