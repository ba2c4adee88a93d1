package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/service"
	"github.com/teepha/More-Recipes/internal/validation"
)

// GetMyProfile handles GET /api/v1/users/me
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Feedback{data=object{user=models.User}}
// @Failure 401 {object} models.Feedback
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, "User found", fiber.Map{"user": user})
}

// UpdateMyProfile handles PUT /api/v1/users/me
// @Summary Update current user profile
// @Description Non-empty fields overwrite the stored values; the author details on the user's reviews follow.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body validation.ProfileInput true "Profile fields"
// @Success 200 {object} models.Feedback{data=object{user=models.User}}
// @Failure 400 {object} models.Feedback
// @Failure 409 {object} models.Feedback
// @Router /users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	in := payload[validation.ProfileInput](c)

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:       currentUserID(c),
		FullName:     validation.Trimmed(in.FullName),
		Username:     validation.Trimmed(in.Username),
		Email:        validation.Trimmed(in.Email),
		ProfileImage: validation.Trimmed(in.ProfileImage),
		Location:     validation.Trimmed(in.Location),
		AboutMe:      validation.Trimmed(in.AboutMe),
	})
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, "Successfully updated profile", fiber.Map{"user": user})
}

// GetMyRecipes handles GET /api/v1/users/me/recipes
// @Summary List the current user's recipes
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Feedback{data=object{recipes=[]models.Recipe}}
// @Router /users/me/recipes [get]
func (s *Server) GetMyRecipes(c *fiber.Ctx) error {
	recipes, err := s.recipeService.ListByUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, "Successfully retrieved your recipes", fiber.Map{"recipes": recipes})
}

// GetMyFavorites handles GET /api/v1/users/me/favorites
// @Summary List the current user's favourite recipes
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Feedback{data=object{recipes=[]models.Recipe}}
// @Router /users/me/favorites [get]
func (s *Server) GetMyFavorites(c *fiber.Ctx) error {
	recipes, err := s.favoriteService.List(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, "Successfully retrieved favorite recipes", fiber.Map{"recipes": recipes})
}
