package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. Email and username uniqueness is
// enforced by the database indexes; an insert conflict is the authoritative
// duplicate signal.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName    string         `gorm:"not null" json:"first_name" validate:"required"`
	LastName     string         `gorm:"not null" json:"last_name" validate:"required"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	UserName     string         `gorm:"uniqueIndex;not null" json:"user_name"`
	ImageURL     string         `json:"imageUrl,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
