package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/service"
	"github.com/teepha/More-Recipes/internal/validation"
)

// AddRecipe handles POST /api/v1/recipes
// @Summary Add a recipe
// @Description Create a recipe owned by the caller and return every recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.RecipeInput true "Recipe"
// @Success 201 {object} models.Feedback{data=object{recipes=[]models.Recipe}}
// @Failure 400 {object} models.Feedback
// @Failure 422 {object} models.Feedback
// @Router /recipes [post]
func (s *Server) AddRecipe(c *fiber.Ctx) error {
	in := payload[validation.RecipeInput](c)

	recipes, err := s.recipeService.Create(c.UserContext(), service.CreateRecipeInput{
		UserID:      currentUserID(c),
		Title:       validation.Trimmed(in.Title),
		Ingredients: validation.Trimmed(in.Ingredients),
		Procedures:  validation.Trimmed(in.Procedures),
	})
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusCreated, "Successfully added new recipe", fiber.Map{"recipes": recipes})
}

// UpdateRecipe handles PUT /api/v1/recipes/:recipeID
// @Summary Update a recipe
// @Description Only the supplied fields change. Only the owner may update.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Param request body validation.RecipeInput true "Fields to change"
// @Success 200 {object} models.Feedback{data=object{recipe=models.Recipe}}
// @Failure 400 {object} models.Feedback
// @Failure 403 {object} models.Feedback
// @Router /recipes/{recipeID} [put]
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	in := payload[validation.RecipeInput](c)

	recipe, err := s.recipeService.Update(c.UserContext(), service.UpdateRecipeInput{
		UserID:      currentUserID(c),
		RecipeID:    recipeID(c),
		Title:       in.Title,
		Ingredients: in.Ingredients,
		Procedures:  in.Procedures,
	})
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, "Successfully updated recipe", fiber.Map{"recipe": recipe})
}

// DeleteRecipe handles DELETE /api/v1/recipes/:recipeID
// @Summary Delete a recipe
// @Description Removes the recipe with its reviews, votes and favourites. Only the owner may delete.
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} models.Feedback
// @Failure 400 {object} models.Feedback
// @Failure 403 {object} models.Feedback
// @Router /recipes/{recipeID} [delete]
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	if err := s.recipeService.Delete(c.UserContext(), currentUserID(c), recipeID(c)); err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, "Successfully deleted recipe", nil)
}

// ListRecipes handles GET /api/v1/recipes
// @Summary List recipes
// @Description Every recipe in insertion order, or ordered by a vote counter when sort and order are both given.
// @Tags recipes
// @Produce json
// @Param sort query string false "upvotes or downvotes"
// @Param order query string false "asc or desc"
// @Success 200 {object} models.Feedback{data=object{recipes=[]models.Recipe}}
// @Failure 400 {object} models.Feedback
// @Failure 422 {object} models.Feedback
// @Router /recipes [get]
func (s *Server) ListRecipes(c *fiber.Ctx) error {
	sort := recipeSort(c)
	recipes, err := s.recipeService.List(c.UserContext(), sort)
	if err != nil {
		return respondError(c, err)
	}

	message := "Successfully retrieved all available recipes"
	if sort != nil {
		message = "Successfully retrieved all available sorted recipes"
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, message, fiber.Map{"recipes": recipes})
}

// GetRecipe handles GET /api/v1/recipes/:recipeID
// @Summary Get a recipe with its reviews
// @Tags recipes
// @Produce json
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} models.Feedback{data=object{recipe=models.Recipe}}
// @Failure 400 {object} models.Feedback
// @Router /recipes/{recipeID} [get]
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	recipe, err := s.recipeService.Get(c.UserContext(), recipeID(c))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, "Recipe found", fiber.Map{"recipe": recipe})
}

// AddReview handles POST /api/v1/recipes/:recipeID/reviews
// @Summary Review a recipe
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Param request body validation.ReviewInput true "Review"
// @Success 201 {object} models.Feedback{data=object{reviews=[]models.Review}}
// @Failure 400 {object} models.Feedback
// @Failure 422 {object} models.Feedback
// @Router /recipes/{recipeID}/reviews [post]
func (s *Server) AddReview(c *fiber.Ctx) error {
	in := payload[validation.ReviewInput](c)

	reviews, err := s.reviewService.Add(c.UserContext(), service.AddReviewInput{
		UserID:        currentUserID(c),
		RecipeID:      recipeID(c),
		ReviewSubject: validation.Trimmed(in.ReviewSubject),
		Vote:          validation.Trimmed(in.Vote),
	})
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusCreated, "Successfully added review", fiber.Map{"reviews": reviews})
}

// Upvote handles POST /api/v1/recipes/:recipeID/upvote
// @Summary Upvote a recipe
// @Description Upvoting again withdraws the vote; a downvote is switched to an upvote.
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} models.Feedback{data=object{recipe=models.Recipe}}
// @Failure 400 {object} models.Feedback
// @Router /recipes/{recipeID}/upvote [post]
func (s *Server) Upvote(c *fiber.Ctx) error {
	return s.vote(c, models.VoteUp)
}

// Downvote handles POST /api/v1/recipes/:recipeID/downvote
// @Summary Downvote a recipe
// @Description Downvoting again withdraws the vote; an upvote is switched to a downvote.
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} models.Feedback{data=object{recipe=models.Recipe}}
// @Failure 400 {object} models.Feedback
// @Router /recipes/{recipeID}/downvote [post]
func (s *Server) Downvote(c *fiber.Ctx) error {
	return s.vote(c, models.VoteDown)
}

func (s *Server) vote(c *fiber.Ctx, direction models.VoteDirection) error {
	recipe, outcome, err := s.voteService.Vote(c.UserContext(), currentUserID(c), recipeID(c), direction)
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, voteMessage(direction, outcome), fiber.Map{"recipe": recipe})
}

func voteMessage(direction models.VoteDirection, outcome models.VoteOutcome) string {
	noun := "upvote"
	if direction == models.VoteDown {
		noun = "downvote"
	}
	switch outcome {
	case models.VoteRemoved:
		return "Successfully removed " + noun
	case models.VoteChanged:
		return "Successfully changed vote to " + noun
	default:
		return "Successfully added " + noun
	}
}

// ToggleFavorite handles POST /api/v1/recipes/:recipeID/favorite
// @Summary Toggle a favourite
// @Description Adds the recipe to the caller's favourites, or removes it when already there.
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} models.Feedback{data=object{favorited=bool}}
// @Failure 400 {object} models.Feedback
// @Router /recipes/{recipeID}/favorite [post]
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	favorited, err := s.favoriteService.Toggle(c.UserContext(), currentUserID(c), recipeID(c))
	if err != nil {
		return respondError(c, err)
	}

	message := "Recipe removed from favorites"
	if favorited {
		message = "Recipe added to favorites"
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, message, fiber.Map{"favorited": favorited})
}
