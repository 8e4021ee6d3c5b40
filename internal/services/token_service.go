package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/recipebox/server/internal/models"
	"github.com/recipebox/server/internal/repository"
	appErr "github.com/recipebox/server/pkg/errors"
	"github.com/recipebox/server/pkg/logger"
	"go.uber.org/zap"
)

// invalidCredentials is deliberately generic: the response must not reveal
// whether the email exists, which part of the credentials was wrong, or
// whether the account is inactive.
var invalidCredentials = appErr.New(appErr.CodeInvalid, "unable to authenticate with provided credentials")

type TokenService interface {
	// Authenticate exchanges email+password for the account's opaque bearer
	// token. Issuance is idempotent: repeated calls return the same key.
	Authenticate(ctx context.Context, email, password string) (string, error)
	// ResolveToken maps a presented bearer key back to its account.
	ResolveToken(ctx context.Context, key string) (*models.Account, error)
}

type tokenService struct {
	accounts repository.AccountRepository
	tokens   repository.TokenRepository
}

func NewTokenService(accounts repository.AccountRepository, tokens repository.TokenRepository) TokenService {
	return &tokenService{accounts: accounts, tokens: tokens}
}

var _ TokenService = (*tokenService)(nil)

func (s *tokenService) Authenticate(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", invalidCredentials
	}

	var a models.Account
	if err := s.accounts.GetByEmail(ctx, models.NormalizeEmail(email), &a); err != nil {
		return "", invalidCredentials
	}
	if !a.IsActive || !a.CheckPassword(password) {
		return "", invalidCredentials
	}

	key, err := newTokenKey()
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "generate token key failed")
	}
	tok, err := s.tokens.GetOrCreate(ctx, &a, key)
	if err != nil {
		return "", err
	}

	logger.L().Info("token issued", zap.String("account_id", a.ID.String()))
	return tok.Key, nil
}

func (s *tokenService) ResolveToken(ctx context.Context, key string) (*models.Account, error) {
	if key == "" {
		return nil, appErr.New(appErr.CodeUnauthorized, "invalid token")
	}
	var tok models.AuthToken
	if err := s.tokens.GetByKey(ctx, key, &tok); err != nil {
		return nil, err
	}
	if !tok.Account.IsActive {
		return nil, appErr.New(appErr.CodeUnauthorized, "invalid token")
	}
	return &tok.Account, nil
}

// newTokenKey returns 40 hex characters from a CSPRNG.
func newTokenKey() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
