package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/recipebox/server/internal/models"
	appErr "github.com/recipebox/server/pkg/errors"
	"gorm.io/gorm"
)

// Attribute constrains the user-owned label types. Tags and ingredients share
// one contract, so one repository serves both, parameterized by the entity
// type instead of duplicating the implementation per table.
type Attribute interface {
	models.Tag | models.Ingredient
}

type AttributeRepository[T Attribute] interface {
	Create(ctx context.Context, obj *T) error
	// ListByOwner returns the owner's rows ordered by name descending.
	// Rows owned by other accounts are never included.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]T, error)
	// GetByIDs resolves the given ids to existing rows; missing ids are
	// silently skipped, and no ownership filter is applied.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error)
}

type attributeRepository[T Attribute] struct {
	db *gorm.DB
}

func NewAttributeRepository[T Attribute](db *gorm.DB) AttributeRepository[T] {
	return &attributeRepository[T]{db: db}
}

func (r *attributeRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Create(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create attribute failed")
	}
	return nil
}

func (r *attributeRepository[T]) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Where("account_id = ?", ownerID).Order("name DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list attributes by owner failed")
	}
	return out, nil
}

func (r *attributeRepository[T]) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []T
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get attributes by ids failed")
	}
	return out, nil
}
