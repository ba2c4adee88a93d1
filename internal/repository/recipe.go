package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teepha/More-Recipes/internal/models"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Recipe, error)
	GetWithReviews(ctx context.Context, id uint) (*models.Recipe, error)
	List(ctx context.Context, sort *models.RecipeSort) ([]models.Recipe, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Recipe, error)
	ListFavoritedBy(ctx context.Context, userID uint) ([]models.Recipe, error)
	Update(ctx context.Context, id uint, patch map[string]any) error
	Delete(ctx context.Context, id uint) error
	SetVoteCounts(ctx context.Context, id uint, upvotes, downvotes int) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository returns a new RecipeRepository implementation.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

// GetByIDForUpdate loads a recipe and holds its row lock until the
// surrounding transaction ends. SQLite has no row locks and ignores the clause.
func (r *recipeRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

func (r *recipeRepository) GetWithReviews(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

// List returns every recipe in insertion order, or ordered by sort when given.
func (r *recipeRepository) List(ctx context.Context, sort *models.RecipeSort) ([]models.Recipe, error) {
	order := "id ASC"
	if sort != nil {
		order = sort.OrderClause()
	}
	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).Order(order).Find(&recipes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

func (r *recipeRepository) ListByUser(ctx context.Context, userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

// ListFavoritedBy returns the recipes a user favourited, oldest favourite first.
func (r *recipeRepository) ListFavoritedBy(ctx context.Context, userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

// Update applies patch to the recipe's columns. Keys must be column names.
func (r *recipeRepository) Update(ctx context.Context, id uint, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Recipe", id)
	}
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Recipe", id)
	}
	return nil
}

func (r *recipeRepository) SetVoteCounts(ctx context.Context, id uint, upvotes, downvotes int) error {
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"upvotes":   upvotes,
			"downvotes": downvotes,
		}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
