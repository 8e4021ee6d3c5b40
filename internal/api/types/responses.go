package types

import (
	"github.com/google/uuid"
	"github.com/recipebox/server/internal/models"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AttributeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RecipeResponse is the list representation: associations appear as bare id
// arrays.
type RecipeResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	TimeMinutes int         `json:"time_minutes"`
	Price       float64     `json:"price"`
	Tags        []uuid.UUID `json:"tags"`
	Ingredients []uuid.UUID `json:"ingredients"`
}

// RecipeDetailResponse is the single-resource representation: associations
// are expanded to full nested objects.
type RecipeDetailResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       float64             `json:"price"`
	Tags        []AttributeResponse `json:"tags"`
	Ingredients []AttributeResponse `json:"ingredients"`
}

func NewAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Email: a.Email, Name: a.Name}
}

func NewProfileResponse(a *models.Account) ProfileResponse {
	return ProfileResponse{Name: a.Name, Email: a.Email}
}

func NewTagResponse(t *models.Tag) AttributeResponse {
	return AttributeResponse{ID: t.ID, Name: t.Name}
}

func NewIngredientResponse(i *models.Ingredient) AttributeResponse {
	return AttributeResponse{ID: i.ID, Name: i.Name}
}

func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	tags := make([]uuid.UUID, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, t.ID)
	}
	ings := make([]uuid.UUID, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ings = append(ings, i.ID)
	}
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Tags:        tags,
		Ingredients: ings,
	}
}

func NewRecipeDetailResponse(r *models.Recipe) RecipeDetailResponse {
	tags := make([]AttributeResponse, 0, len(r.Tags))
	for i := range r.Tags {
		tags = append(tags, NewTagResponse(&r.Tags[i]))
	}
	ings := make([]AttributeResponse, 0, len(r.Ingredients))
	for i := range r.Ingredients {
		ings = append(ings, NewIngredientResponse(&r.Ingredients[i]))
	}
	return RecipeDetailResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Tags:        tags,
		Ingredients: ings,
	}
}

func NewRecipeListResponse(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}
