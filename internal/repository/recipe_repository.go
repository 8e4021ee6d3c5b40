package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/recipebox/server/internal/models"
	appErr "github.com/recipebox/server/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeRepository interface {
	Create(ctx context.Context, obj *models.Recipe) error
	// ListByOwner returns the owner's recipes ordered by title descending,
	// with tag and ingredient associations loaded.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error)
	// GetByIDForOwner scopes the lookup to the owner: a recipe owned by a
	// different account is reported as not found, never as forbidden.
	GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID, dest *models.Recipe) error
	// UpdateScalars persists title/time/price without touching associations.
	UpdateScalars(ctx context.Context, obj *models.Recipe) error
	ReplaceTags(ctx context.Context, obj *models.Recipe, tags []models.Tag) error
	ReplaceIngredients(ctx context.Context, obj *models.Recipe, ingredients []models.Ingredient) error
	// DeleteForOwner removes the owner's recipe and its join rows.
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, obj *models.Recipe) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(obj).Error; err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create recipe failed")
	}
	return nil
}

func (r *recipeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	var out []models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("account_id = ?", ownerID).
		Order("title DESC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list recipes by owner failed")
	}
	return out, nil
}

func (r *recipeRepository) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID, dest *models.Recipe) error {
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND account_id = ?", id, ownerID).
		First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "recipe not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get recipe failed")
	}
	return nil
}

func (r *recipeRepository) UpdateScalars(ctx context.Context, obj *models.Recipe) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(obj).Error
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "update recipe failed")
	}
	return nil
}

func (r *recipeRepository) ReplaceTags(ctx context.Context, obj *models.Recipe, tags []models.Tag) error {
	err := r.db.WithContext(ctx).Model(obj).Association("Tags").Replace(tags)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "replace recipe tags failed")
	}
	obj.Tags = tags
	return nil
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, obj *models.Recipe, ingredients []models.Ingredient) error {
	err := r.db.WithContext(ctx).Model(obj).Association("Ingredients").Replace(ingredients)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "replace recipe ingredients failed")
	}
	obj.Ingredients = ingredients
	return nil
}

func (r *recipeRepository) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	var rec models.Recipe
	if err := r.GetByIDForOwner(ctx, id, ownerID, &rec); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Select(clause.Associations).Delete(&rec).Error
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "delete recipe failed")
	}
	return nil
}
