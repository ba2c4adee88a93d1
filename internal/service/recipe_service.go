// Package service holds the business rules behind each API operation.
package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/observability"
	"github.com/teepha/More-Recipes/internal/repository"
)

type RecipeService struct {
	repos repository.Repos
	tx    repository.TxFunc
}

type CreateRecipeInput struct {
	UserID      uint
	Title       string
	Ingredients string
	Procedures  string
}

// UpdateRecipeInput carries a partial update. Nil or blank fields are kept.
type UpdateRecipeInput struct {
	UserID      uint
	RecipeID    uint
	Title       *string
	Ingredients *string
	Procedures  *string
}

func NewRecipeService(repos repository.Repos, tx repository.TxFunc) *RecipeService {
	return &RecipeService{repos: repos, tx: tx}
}

// Create stores a recipe owned by in.UserID and returns every recipe in
// insertion order.
func (s *RecipeService) Create(ctx context.Context, in CreateRecipeInput) ([]models.Recipe, error) {
	ctx, span := observability.StartSpan(ctx, "RecipeService.Create")
	var err error
	defer func() { observability.EndSpan(span, err) }()

	recipe := &models.Recipe{
		Title:       strings.TrimSpace(in.Title),
		Ingredients: strings.TrimSpace(in.Ingredients),
		Procedures:  strings.TrimSpace(in.Procedures),
		UserID:      in.UserID,
	}
	if err = s.repos.Recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	observability.RecipeEvents.WithLabelValues(observability.RecipeCreated).Inc()

	recipes, err := s.repos.Recipes.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update patches the supplied fields of a recipe owned by in.UserID.
func (s *RecipeService) Update(ctx context.Context, in UpdateRecipeInput) (*models.Recipe, error) {
	ctx, span := observability.StartSpan(ctx, "RecipeService.Update",
		attribute.Int64("recipe.id", int64(in.RecipeID)))
	var updated *models.Recipe
	err := s.tx(ctx, func(r repository.Repos) error {
		if _, err := ownedRecipe(ctx, r, in.RecipeID, in.UserID); err != nil {
			return err
		}

		patch := map[string]any{}
		setIfPresent(patch, "title", in.Title)
		setIfPresent(patch, "ingredients", in.Ingredients)
		setIfPresent(patch, "procedures", in.Procedures)
		if len(patch) == 0 {
			return models.NewValidationError("Specify data to update")
		}
		if err := r.Recipes.Update(ctx, in.RecipeID, patch); err != nil {
			return err
		}

		var err error
		updated, err = r.Recipes.GetByID(ctx, in.RecipeID)
		return err
	})
	observability.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	observability.RecipeEvents.WithLabelValues(observability.RecipeUpdated).Inc()
	return updated, nil
}

// Delete removes a recipe owned by userID together with its reviews, votes
// and favourites.
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID uint) error {
	ctx, span := observability.StartSpan(ctx, "RecipeService.Delete",
		attribute.Int64("recipe.id", int64(recipeID)))
	err := s.tx(ctx, func(r repository.Repos) error {
		if _, err := ownedRecipe(ctx, r, recipeID, userID); err != nil {
			return err
		}
		if err := r.Reviews.DeleteByRecipe(ctx, recipeID); err != nil {
			return err
		}
		if err := r.Votes.DeleteByRecipe(ctx, recipeID); err != nil {
			return err
		}
		if err := r.Favorites.DeleteByRecipe(ctx, recipeID); err != nil {
			return err
		}
		return r.Recipes.Delete(ctx, recipeID)
	})
	observability.EndSpan(span, err)
	if err != nil {
		return err
	}
	observability.RecipeEvents.WithLabelValues(observability.RecipeDeleted).Inc()
	return nil
}

// List returns every recipe, ordered by sort when it is non-nil.
func (s *RecipeService) List(ctx context.Context, sort *models.RecipeSort) ([]models.Recipe, error) {
	return s.repos.Recipes.List(ctx, sort)
}

// Get returns a recipe with its reviews.
func (s *RecipeService) Get(ctx context.Context, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.repos.Recipes.GetWithReviews(ctx, recipeID)
	if models.HasCode(err, models.CodeNotFound) {
		return nil, models.NewInvalidRecipeIDError()
	}
	return recipe, err
}

// ListByUser returns the recipes authored by userID.
func (s *RecipeService) ListByUser(ctx context.Context, userID uint) ([]models.Recipe, error) {
	return s.repos.Recipes.ListByUser(ctx, userID)
}

// existingRecipe loads a recipe, reporting an unknown id the same way as a
// malformed one.
func existingRecipe(ctx context.Context, r repository.Repos, recipeID uint) (*models.Recipe, error) {
	recipe, err := r.Recipes.GetByID(ctx, recipeID)
	if models.HasCode(err, models.CodeNotFound) {
		return nil, models.NewInvalidRecipeIDError()
	}
	return recipe, err
}

func ownedRecipe(ctx context.Context, r repository.Repos, recipeID, userID uint) (*models.Recipe, error) {
	recipe, err := existingRecipe(ctx, r, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, models.NewForbiddenError("You can only modify your own recipes")
	}
	return recipe, nil
}

func setIfPresent(patch map[string]any, column string, v *string) {
	if v == nil {
		return
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		patch[column] = trimmed
	}
}
