package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/recipebox/server/internal/models"
	"github.com/recipebox/server/internal/repository"
	appErr "github.com/recipebox/server/pkg/errors"
	"github.com/recipebox/server/pkg/logger"
	"go.uber.org/zap"
)

type CreateRecipeInput struct {
	Title         string
	TimeMinutes   int
	Price         float64
	TagIDs        []uuid.UUID
	IngredientIDs []uuid.UUID
}

// UpdateRecipeInput carries a partial update; nil fields are left untouched.
// A non-nil id slice replaces the whole association set.
type UpdateRecipeInput struct {
	Title         *string
	TimeMinutes   *int
	Price         *float64
	TagIDs        *[]uuid.UUID
	IngredientIDs *[]uuid.UUID
}

type RecipeService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateRecipeInput) (*models.Recipe, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error)
	Get(ctx context.Context, ownerID, recipeID uuid.UUID) (*models.Recipe, error)
	Update(ctx context.Context, ownerID, recipeID uuid.UUID, input UpdateRecipeInput) (*models.Recipe, error)
	Delete(ctx context.Context, ownerID, recipeID uuid.UUID) error
}

type recipeService struct {
	recipes     repository.RecipeRepository
	tags        repository.AttributeRepository[models.Tag]
	ingredients repository.AttributeRepository[models.Ingredient]
}

func NewRecipeService(
	recipes repository.RecipeRepository,
	tags repository.AttributeRepository[models.Tag],
	ingredients repository.AttributeRepository[models.Ingredient],
) RecipeService {
	return &recipeService{recipes: recipes, tags: tags, ingredients: ingredients}
}

var _ RecipeService = (*recipeService)(nil)

func (s *recipeService) Create(ctx context.Context, ownerID uuid.UUID, input CreateRecipeInput) (*models.Recipe, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, appErr.New(appErr.CodeInvalid, "title is required").WithField("title", "this field is required")
	}

	rec := &models.Recipe{
		Title:       input.Title,
		TimeMinutes: input.TimeMinutes,
		Price:       input.Price,
		AccountID:   ownerID,
	}
	if err := s.recipes.Create(ctx, rec); err != nil {
		return nil, err
	}

	// Referenced ids resolve to existing rows regardless of who owns them;
	// missing ids are dropped rather than rejected.
	if len(input.TagIDs) > 0 {
		tags, err := s.tags.GetByIDs(ctx, input.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.recipes.ReplaceTags(ctx, rec, tags); err != nil {
			return nil, err
		}
	}
	if len(input.IngredientIDs) > 0 {
		ings, err := s.ingredients.GetByIDs(ctx, input.IngredientIDs)
		if err != nil {
			return nil, err
		}
		if err := s.recipes.ReplaceIngredients(ctx, rec, ings); err != nil {
			return nil, err
		}
	}

	logger.L().Info("recipe created", zap.String("recipe_id", rec.ID.String()), zap.String("account_id", ownerID.String()))
	return rec, nil
}

func (s *recipeService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	return s.recipes.ListByOwner(ctx, ownerID)
}

func (s *recipeService) Get(ctx context.Context, ownerID, recipeID uuid.UUID) (*models.Recipe, error) {
	var rec models.Recipe
	if err := s.recipes.GetByIDForOwner(ctx, recipeID, ownerID, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *recipeService) Update(ctx context.Context, ownerID, recipeID uuid.UUID, input UpdateRecipeInput) (*models.Recipe, error) {
	var rec models.Recipe
	if err := s.recipes.GetByIDForOwner(ctx, recipeID, ownerID, &rec); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, appErr.New(appErr.CodeInvalid, "title is required").WithField("title", "this field may not be blank")
		}
		rec.Title = *input.Title
	}
	if input.TimeMinutes != nil {
		rec.TimeMinutes = *input.TimeMinutes
	}
	if input.Price != nil {
		rec.Price = *input.Price
	}

	if err := s.recipes.UpdateScalars(ctx, &rec); err != nil {
		return nil, err
	}

	if input.TagIDs != nil {
		tags, err := s.tags.GetByIDs(ctx, *input.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.recipes.ReplaceTags(ctx, &rec, tags); err != nil {
			return nil, err
		}
	}
	if input.IngredientIDs != nil {
		ings, err := s.ingredients.GetByIDs(ctx, *input.IngredientIDs)
		if err != nil {
			return nil, err
		}
		if err := s.recipes.ReplaceIngredients(ctx, &rec, ings); err != nil {
			return nil, err
		}
	}

	logger.L().Info("recipe updated", zap.String("recipe_id", recipeID.String()), zap.String("account_id", ownerID.String()))
	return &rec, nil
}

func (s *recipeService) Delete(ctx context.Context, ownerID, recipeID uuid.UUID) error {
	if err := s.recipes.DeleteForOwner(ctx, recipeID, ownerID); err != nil {
		return err
	}
	logger.L().Info("recipe deleted", zap.String("recipe_id", recipeID.String()), zap.String("account_id", ownerID.String()))
	return nil
}
