package service

import (
	"context"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/repository"
)

type FavoriteService struct {
	repos repository.Repos
	tx    repository.TxFunc
}

func NewFavoriteService(repos repository.Repos, tx repository.TxFunc) *FavoriteService {
	return &FavoriteService{repos: repos, tx: tx}
}

// Toggle adds the recipe to the user's favourites, or removes it when it is
// already there. It reports whether the recipe is a favourite afterwards.
func (s *FavoriteService) Toggle(ctx context.Context, userID, recipeID uint) (bool, error) {
	var favorited bool
	err := s.tx(ctx, func(r repository.Repos) error {
		if _, err := existingRecipe(ctx, r, recipeID); err != nil {
			return err
		}
		exists, err := r.Favorites.Exists(ctx, userID, recipeID)
		if err != nil {
			return err
		}
		if exists {
			return r.Favorites.Delete(ctx, userID, recipeID)
		}
		favorited = true
		return r.Favorites.Create(ctx, &models.Favorite{UserID: userID, RecipeID: recipeID})
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

// List returns the user's favourite recipes, oldest favourite first.
func (s *FavoriteService) List(ctx context.Context, userID uint) ([]models.Recipe, error) {
	return s.repos.Recipes.ListFavoritedBy(ctx, userID)
}
