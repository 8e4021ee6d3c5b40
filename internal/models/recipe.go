package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is an owned resource referencing zero or more tags and ingredients.
// The referenced rows are not required to belong to the recipe's owner.
type Recipe struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string       `gorm:"not null;index" json:"title" validate:"required"`
	TimeMinutes int          `gorm:"not null;default:0" json:"time_minutes"`
	Price       float64      `gorm:"type:numeric(5,2);not null;default:0" json:"price"`
	AccountID   uuid.UUID    `gorm:"type:uuid;index;not null" json:"account_id"`
	Tags        []Tag        `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
