package repository

import (
	"context"
	"errors"

	"github.com/recipebox/server/internal/models"
	appErr "github.com/recipebox/server/pkg/errors"
	"gorm.io/gorm"
)

type AccountRepository interface {
	BaseRepository[models.Account]
	GetByEmail(ctx context.Context, email string, dest *models.Account) error
}

type accountRepository struct {
	BaseRepository[models.Account]
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{BaseRepository: NewBaseRepository[models.Account](db), db: db}
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string, dest *models.Account) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "account not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get account by email failed")
	}
	return nil
}
