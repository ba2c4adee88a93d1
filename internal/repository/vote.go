package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/models"
)

// VoteRepository defines persistence operations for recipe votes.
type VoteRepository interface {
	Get(ctx context.Context, userID, recipeID uint) (*models.Vote, error)
	Create(ctx context.Context, vote *models.Vote) error
	UpdateDirection(ctx context.Context, id uint, direction models.VoteDirection) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, recipeID uint) (upvotes, downvotes int, err error)
	DeleteByRecipe(ctx context.Context, recipeID uint) error
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository returns a new VoteRepository implementation.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Get returns nil, nil when the user has not voted on the recipe.
func (r *voteRepository) Get(ctx context.Context, userID, recipeID uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &vote, nil
}

func (r *voteRepository) Create(ctx context.Context, vote *models.Vote) error {
	if err := r.db.WithContext(ctx).Create(vote).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Vote already recorded", map[string]string{"vote": "You have already voted on this recipe"})
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *voteRepository) UpdateDirection(ctx context.Context, id uint, direction models.VoteDirection) error {
	err := r.db.WithContext(ctx).
		Model(&models.Vote{ID: id}).
		Update("direction", direction).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *voteRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Vote{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Count tallies the vote rows of a recipe by direction.
func (r *voteRepository) Count(ctx context.Context, recipeID uint) (int, int, error) {
	var rows []struct {
		Direction models.VoteDirection
		Total     int
	}
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Select("direction, COUNT(*) AS total").
		Where("recipe_id = ?", recipeID).
		Group("direction").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, models.NewInternalError(err)
	}

	var up, down int
	for _, row := range rows {
		switch row.Direction {
		case models.VoteUp:
			up = row.Total
		case models.VoteDown:
			down = row.Total
		}
	}
	return up, down, nil
}

func (r *voteRepository) DeleteByRecipe(ctx context.Context, recipeID uint) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&models.Vote{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
