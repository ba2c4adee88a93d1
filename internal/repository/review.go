package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/models"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByRecipe(ctx context.Context, recipeID uint) ([]models.Review, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	SyncAuthorProfile(ctx context.Context, userID uint, username, profileImage string) error
	DeleteByRecipe(ctx context.Context, recipeID uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) ListByRecipe(ctx context.Context, recipeID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// SyncAuthorProfile rewrites the author snapshot on every review by userID.
func (r *reviewRepository) SyncAuthorProfile(ctx context.Context, userID uint, username, profileImage string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"username":      username,
			"profile_image": profileImage,
		}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) DeleteByRecipe(ctx context.Context, recipeID uint) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&models.Review{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
