package service

import (
	"context"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/observability"
	"github.com/teepha/More-Recipes/internal/repository"
)

// VoteService records one vote per user per recipe and keeps the recipe's
// counters equal to the stored votes.
type VoteService struct {
	tx repository.TxFunc
}

func NewVoteService(tx repository.TxFunc) *VoteService {
	return &VoteService{tx: tx}
}

// Vote casts a vote in direction. Repeating the caller's current direction
// withdraws the vote; the opposite direction switches it.
func (s *VoteService) Vote(ctx context.Context, userID, recipeID uint, direction models.VoteDirection) (*models.Recipe, models.VoteOutcome, error) {
	var (
		recipe  *models.Recipe
		outcome models.VoteOutcome
	)
	err := s.tx(ctx, func(r repository.Repos) error {
		// Voters on one recipe queue on its row so each recount sees the
		// votes committed before it.
		if _, err := r.Recipes.GetByIDForUpdate(ctx, recipeID); err != nil {
			if models.HasCode(err, models.CodeNotFound) {
				return models.NewInvalidRecipeIDError()
			}
			return err
		}

		current, err := r.Votes.Get(ctx, userID, recipeID)
		if err != nil {
			return err
		}
		switch {
		case current == nil:
			outcome = models.VoteCast
			err = r.Votes.Create(ctx, &models.Vote{UserID: userID, RecipeID: recipeID, Direction: direction})
		case current.Direction == direction:
			outcome = models.VoteRemoved
			err = r.Votes.Delete(ctx, current.ID)
		default:
			outcome = models.VoteChanged
			err = r.Votes.UpdateDirection(ctx, current.ID, direction)
		}
		if err != nil {
			return err
		}

		up, down, err := r.Votes.Count(ctx, recipeID)
		if err != nil {
			return err
		}
		if err := r.Recipes.SetVoteCounts(ctx, recipeID, up, down); err != nil {
			return err
		}
		recipe, err = r.Recipes.GetByID(ctx, recipeID)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	observability.VoteEvents.WithLabelValues(string(direction), string(outcome)).Inc()
	return recipe, outcome, nil
}
