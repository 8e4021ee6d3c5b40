package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/recipebox/server/internal/api/middleware"
	"github.com/recipebox/server/internal/api/types"
	"github.com/recipebox/server/internal/api/validators"
	"github.com/recipebox/server/internal/models"
	"github.com/recipebox/server/internal/repository"
)

// AttributesHandler serves the user-owned label endpoints. Tags and
// ingredients share the contract, so one handler is instantiated per entity
// type with a constructor and a presenter for that type.
type AttributesHandler[T repository.Attribute] struct {
	repo     repository.AttributeRepository[T]
	validate *validator.Validate
	build    func(owner uuid.UUID, name string) *T
	present  func(*T) types.AttributeResponse
}

func NewAttributesHandler[T repository.Attribute](
	repo repository.AttributeRepository[T],
	v *validator.Validate,
	build func(owner uuid.UUID, name string) *T,
	present func(*T) types.AttributeResponse,
) *AttributesHandler[T] {
	return &AttributesHandler[T]{repo: repo, validate: v, build: build, present: present}
}

// NewTagsHandler wires the attribute handler for tags.
func NewTagsHandler(repo repository.AttributeRepository[models.Tag], v *validator.Validate) *AttributesHandler[models.Tag] {
	return NewAttributesHandler(repo, v,
		func(owner uuid.UUID, name string) *models.Tag {
			return &models.Tag{AccountID: owner, Name: name}
		},
		types.NewTagResponse,
	)
}

// NewIngredientsHandler wires the attribute handler for ingredients.
func NewIngredientsHandler(repo repository.AttributeRepository[models.Ingredient], v *validator.Validate) *AttributesHandler[models.Ingredient] {
	return NewAttributesHandler(repo, v,
		func(owner uuid.UUID, name string) *models.Ingredient {
			return &models.Ingredient{AccountID: owner, Name: name}
		},
		types.NewIngredientResponse,
	)
}

// List returns the caller's rows, name descending.
func (h *AttributesHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetAccount(r.Context())
	items, err := h.repo.ListByOwner(r.Context(), owner.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]types.AttributeResponse, 0, len(items))
	for i := range items {
		out = append(out, h.present(&items[i]))
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: out})
}

// Create stores a new row owned by the caller.
func (h *AttributesHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateAttributeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeFieldErrors(w, validators.FieldErrors(err))
		return
	}

	owner := middleware.GetAccount(r.Context())
	obj := h.build(owner.ID, req.Name)
	if err := h.repo.Create(r.Context(), obj); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: h.present(obj)})
}
