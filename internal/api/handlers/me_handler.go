package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/recipebox/server/internal/api/middleware"
	"github.com/recipebox/server/internal/api/types"
	"github.com/recipebox/server/internal/api/validators"
	"github.com/recipebox/server/internal/services"
)

// MeHandler serves the caller's own profile. It never exposes any other
// account.
type MeHandler struct {
	accounts services.AccountService
	validate *validator.Validate
}

func NewMeHandler(accounts services.AccountService, v *validator.Validate) *MeHandler {
	return &MeHandler{accounts: accounts, validate: v}
}

func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	a := middleware.GetAccount(r.Context())
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.NewProfileResponse(a)})
}

// Patch applies a partial update of name and/or password.
func (h *MeHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeFieldErrors(w, validators.FieldErrors(err))
		return
	}

	a := middleware.GetAccount(r.Context())
	updated, err := h.accounts.UpdateProfile(r.Context(), a, services.ProfileUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.NewProfileResponse(updated)})
}
