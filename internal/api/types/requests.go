package types

import "github.com/google/uuid"

type RegisterAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" validate:"omitempty,min=5"`
}

type CreateAttributeRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateRecipeRequest struct {
	Title         string      `json:"title" validate:"required"`
	TimeMinutes   int         `json:"time_minutes" validate:"gte=0"`
	Price         float64     `json:"price" validate:"gte=0"`
	Tags          []uuid.UUID `json:"tags"`
	Ingredients   []uuid.UUID `json:"ingredients"`
}

// UpdateRecipeRequest serves both PUT and PATCH; for PUT the handler requires
// title to be present, for PATCH every field is optional.
type UpdateRecipeRequest struct {
	Title       *string      `json:"title" validate:"omitempty,min=1"`
	TimeMinutes *int         `json:"time_minutes" validate:"omitempty,gte=0"`
	Price       *float64     `json:"price" validate:"omitempty,gte=0"`
	Tags        *[]uuid.UUID `json:"tags"`
	Ingredients *[]uuid.UUID `json:"ingredients"`
}
