package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/teepha/More-Recipes/internal/middleware"
	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/service"
	"github.com/teepha/More-Recipes/internal/validation"
)

// Signup handles POST /api/v1/users/signup
// @Summary User signup
// @Description Register a new account and receive a token
// @Tags users
// @Accept json
// @Produce json
// @Param request body validation.SignupInput true "Signup request"
// @Success 201 {object} models.Feedback{data=object{user=models.User,token=string}}
// @Failure 400 {object} models.Feedback
// @Failure 409 {object} models.Feedback
// @Failure 422 {object} models.Feedback
// @Router /users/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	in := payload[validation.SignupInput](c)

	user, err := s.userService.Signup(c.UserContext(), service.SignupInput{
		FullName: validation.Trimmed(in.FullName),
		Username: validation.Trimmed(in.Username),
		Email:    validation.Trimmed(in.Email),
		Password: *in.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	return models.RespondWithSuccess(c, fiber.StatusCreated, "Successfully created account", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Signin handles POST /api/v1/users/signin
// @Summary User signin
// @Description Authenticate with username and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body validation.SigninInput true "Signin credentials"
// @Success 200 {object} models.Feedback{data=object{user=models.User,token=string}}
// @Failure 400 {object} models.Feedback
// @Failure 401 {object} models.Feedback
// @Router /users/signin [post]
func (s *Server) Signin(c *fiber.Ctx) error {
	in := payload[validation.SigninInput](c)

	user, err := s.userService.Signin(c.UserContext(), validation.Trimmed(in.Username), *in.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	return models.RespondWithSuccess(c, fiber.StatusOK, "You are now logged In", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Signout handles POST /api/v1/users/signout
// @Summary User signout
// @Description Revoke the presented token until it expires
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Feedback
// @Failure 401 {object} models.Feedback
// @Router /users/signout [post]
func (s *Server) Signout(c *fiber.Ctx) error {
	jti, _ := c.Locals(localTokenID).(string)
	expiry, _ := c.Locals(localTokenExpiry).(time.Time)

	if !s.revocations.Enabled() {
		middleware.Logger.WarnContext(c.UserContext(), "signout without revocation store; token stays valid until expiry")
	} else if err := s.revocations.Revoke(c.UserContext(), jti, time.Until(expiry)); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "token revocation failed", slog.String("error", err.Error()))
		return respondError(c, models.NewInternalError(err))
	}

	return models.RespondWithSuccess(c, fiber.StatusOK, "You are now logged out", nil)
}
