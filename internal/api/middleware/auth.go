package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/recipebox/server/internal/api/types"
	"github.com/recipebox/server/internal/models"
	appErr "github.com/recipebox/server/pkg/errors"
)

type accountKeyType string

const accountKey accountKeyType = "account"

// TokenResolver maps an opaque bearer key to the account it belongs to.
type TokenResolver interface {
	ResolveToken(ctx context.Context, key string) (*models.Account, error)
}

// Auth validates the bearer token and stores the resolved account in the
// request context. Every failure mode returns the same generic 401.
func Auth(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				unauthorized(w)
				return
			}
			key := strings.TrimSpace(ah[len("Bearer "):])
			account, err := resolver.ResolveToken(r.Context(), key)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), accountKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccount returns the authenticated account from the context, or nil on
// an unauthenticated request.
func GetAccount(ctx context.Context) *models.Account {
	if v := ctx.Value(accountKey); v != nil {
		if a, ok := v.(*models.Account); ok {
			return a
		}
	}
	return nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(types.APIResponse{
		Success: false,
		Error:   &types.APIError{Code: string(appErr.CodeUnauthorized), Message: "authentication credentials were not provided or are invalid"},
	})
}
