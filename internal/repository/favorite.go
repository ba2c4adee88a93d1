package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/models"
)

// FavoriteRepository defines persistence operations for favourites.
type FavoriteRepository interface {
	Exists(ctx context.Context, userID, recipeID uint) (bool, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, recipeID uint) error
	DeleteByRecipe(ctx context.Context, recipeID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Favorite already recorded", map[string]string{"favorite": "Recipe is already a favorite"})
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, recipeID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favoriteRepository) DeleteByRecipe(ctx context.Context, recipeID uint) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&models.Favorite{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
