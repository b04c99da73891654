package models

import (
	"time"

	"github.com/google/uuid"
)

// Link is a single labeled platform reference owned by a user.
type Link struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	PlatformName string    `gorm:"not null" json:"platform_name" validate:"required"`
	PlatformURL  string    `gorm:"not null" json:"platform_url" validate:"required"`
	CreatedAt    time.Time `json:"createdAt"`
}
