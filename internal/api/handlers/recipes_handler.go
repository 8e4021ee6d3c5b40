package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/recipebox/server/internal/api/middleware"
	"github.com/recipebox/server/internal/api/types"
	"github.com/recipebox/server/internal/api/validators"
	"github.com/recipebox/server/internal/services"
	appErr "github.com/recipebox/server/pkg/errors"
)

type RecipesHandler struct {
	recipes  services.RecipeService
	validate *validator.Validate
}

func NewRecipesHandler(recipes services.RecipeService, v *validator.Validate) *RecipesHandler {
	return &RecipesHandler{recipes: recipes, validate: v}
}

// List returns the caller's recipes, title descending, with associations as
// bare id arrays.
func (h *RecipesHandler) List(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetAccount(r.Context())
	items, err := h.recipes.List(r.Context(), owner.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.NewRecipeListResponse(items)})
}

func (h *RecipesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeFieldErrors(w, validators.FieldErrors(err))
		return
	}

	owner := middleware.GetAccount(r.Context())
	rec, err := h.recipes.Create(r.Context(), owner.ID, services.CreateRecipeInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: types.NewRecipeResponse(rec)})
}

// Get returns the detail representation with nested tag/ingredient objects.
func (h *RecipesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recipeID(w, r)
	if !ok {
		return
	}
	owner := middleware.GetAccount(r.Context())
	rec, err := h.recipes.Get(r.Context(), owner.ID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.NewRecipeDetailResponse(rec)})
}

// Put requires the full representation; Patch accepts any subset.
func (h *RecipesHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

func (h *RecipesHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *RecipesHandler) update(w http.ResponseWriter, r *http.Request, full bool) {
	id, ok := h.recipeID(w, r)
	if !ok {
		return
	}
	var req types.UpdateRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeFieldErrors(w, validators.FieldErrors(err))
		return
	}
	if full && req.Title == nil {
		writeFieldErrors(w, map[string]string{"title": "this field is required"})
		return
	}

	owner := middleware.GetAccount(r.Context())
	rec, err := h.recipes.Update(r.Context(), owner.ID, id, services.UpdateRecipeInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.NewRecipeDetailResponse(rec)})
}

func (h *RecipesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recipeID(w, r)
	if !ok {
		return
	}
	owner := middleware.GetAccount(r.Context())
	if err := h.recipes.Delete(r.Context(), owner.ID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// recipeID parses the path id. A malformed id cannot match any resource in
// the caller's scope, so it is reported as not found.
func (h *RecipesHandler) recipeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, appErr.New(appErr.CodeNotFound, "recipe not found"))
		return uuid.Nil, false
	}
	return id, true
}
