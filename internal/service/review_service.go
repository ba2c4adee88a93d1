package service

import (
	"context"
	"strings"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/observability"
	"github.com/teepha/More-Recipes/internal/repository"
)

type ReviewService struct {
	tx repository.TxFunc
}

type AddReviewInput struct {
	UserID        uint
	RecipeID      uint
	ReviewSubject string
	// Vote is an optional "upvote" or "downvote" indicator stored with the review.
	Vote string
}

func NewReviewService(tx repository.TxFunc) *ReviewService {
	return &ReviewService{tx: tx}
}

// Add stores a review signed with the author's current username and profile
// image, then returns every review of the recipe.
func (s *ReviewService) Add(ctx context.Context, in AddReviewInput) ([]models.Review, error) {
	var reviews []models.Review
	err := s.tx(ctx, func(r repository.Repos) error {
		if _, err := existingRecipe(ctx, r, in.RecipeID); err != nil {
			return err
		}
		author, err := r.Users.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		review := &models.Review{
			RecipeID:      in.RecipeID,
			UserID:        in.UserID,
			ReviewSubject: strings.TrimSpace(in.ReviewSubject),
			Username:      author.Username,
			ProfileImage:  author.ProfileImage,
			Vote:          strings.ToLower(strings.TrimSpace(in.Vote)),
		}
		if err := r.Reviews.Create(ctx, review); err != nil {
			return err
		}

		reviews, err = r.Reviews.ListByRecipe(ctx, in.RecipeID)
		return err
	})
	if err != nil {
		return nil, err
	}
	observability.RecipeEvents.WithLabelValues(observability.RecipeReviewed).Inc()
	return reviews, nil
}
