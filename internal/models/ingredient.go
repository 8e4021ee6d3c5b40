package models

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is a user-owned label attachable to recipes. Same shape as Tag,
// separate namespace.
type Ingredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null;index" json:"name" validate:"required"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null" json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
