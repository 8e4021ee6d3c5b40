package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/recipebox/server/internal/api/types"
	"github.com/recipebox/server/internal/api/validators"
	"github.com/recipebox/server/internal/services"
)

// AccountsHandler serves the public account surface: signup and token
// issuance.
type AccountsHandler struct {
	accounts services.AccountService
	tokens   services.TokenService
	validate *validator.Validate
}

func NewAccountsHandler(accounts services.AccountService, tokens services.TokenService, v *validator.Validate) *AccountsHandler {
	return &AccountsHandler{accounts: accounts, tokens: tokens, validate: v}
}

// Register creates a new account. The response never includes the password
// in any form.
func (h *AccountsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeFieldErrors(w, validators.FieldErrors(err))
		return
	}

	a, err := h.accounts.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: types.NewAccountResponse(a)})
}

// Token exchanges credentials for the account's bearer token. Failures are
// 400 with a message that does not reveal which part was wrong.
func (h *AccountsHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	key, err := h.tokens.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.TokenResponse{Token: key}})
}
