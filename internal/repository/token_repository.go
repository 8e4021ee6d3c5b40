package repository

import (
	"context"
	"errors"

	"github.com/recipebox/server/internal/models"
	appErr "github.com/recipebox/server/pkg/errors"
	"gorm.io/gorm"
)

type TokenRepository interface {
	// GetByKey resolves a token key to its row with the owning account loaded.
	GetByKey(ctx context.Context, key string, dest *models.AuthToken) error
	// GetOrCreate returns the account's existing token, creating one with the
	// provided key only when no row exists yet.
	GetOrCreate(ctx context.Context, account *models.Account, key string) (*models.AuthToken, error)
	// DeleteForAccount revokes the account's token if present.
	DeleteForAccount(ctx context.Context, account *models.Account) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) GetByKey(ctx context.Context, key string, dest *models.AuthToken) error {
	err := r.db.WithContext(ctx).Preload("Account").Where("key = ?", key).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeUnauthorized, "invalid token")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get token failed")
	}
	return nil
}

func (r *tokenRepository) GetOrCreate(ctx context.Context, account *models.Account, key string) (*models.AuthToken, error) {
	var tok models.AuthToken
	err := r.db.WithContext(ctx).Where("account_id = ?", account.ID).First(&tok).Error
	if err == nil {
		return &tok, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get token failed")
	}

	tok = models.AuthToken{Key: key, AccountID: account.ID}
	if err := r.db.WithContext(ctx).Create(&tok).Error; err != nil {
		// Lost a race with a concurrent issuance; the existing row wins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.AuthToken
			if gerr := r.db.WithContext(ctx).Where("account_id = ?", account.ID).First(&existing).Error; gerr == nil {
				return &existing, nil
			}
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "create token failed")
	}
	return &tok, nil
}

func (r *tokenRepository) DeleteForAccount(ctx context.Context, account *models.Account) error {
	res := r.db.WithContext(ctx).Where("account_id = ?", account.ID).Delete(&models.AuthToken{})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete token failed")
	}
	return nil
}
