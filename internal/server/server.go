// Package server contains the HTTP handlers for the More-Recipes API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "github.com/teepha/More-Recipes/docs" // swagger docs
	"github.com/teepha/More-Recipes/internal/config"
	"github.com/teepha/More-Recipes/internal/database"
	"github.com/teepha/More-Recipes/internal/kv"
	"github.com/teepha/More-Recipes/internal/middleware"
	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/repository"
	"github.com/teepha/More-Recipes/internal/service"
	"github.com/teepha/More-Recipes/internal/validation"
)

const serviceName = "more-recipes-api"

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	revocations     *kv.RevocationStore
	app             *fiber.App
	promMiddleware  *fiberprometheus.FiberPrometheus
	recipeService   *service.RecipeService
	reviewService   *service.ReviewService
	voteService     *service.VoteService
	favoriteService *service.FavoriteService
	userService     *service.UserService
}

// NewServer connects to the database and Redis described by cfg and builds
// the server on top of them. Redis is optional; without it rate limits and
// token revocation are disabled.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := kv.Connect(ctx, cfg.RedisURL)
		switch {
		case client == nil:
			middleware.Logger.Warn("redis disabled", slog.String("error", err.Error()))
		case err != nil:
			middleware.Logger.Warn("redis unreachable at startup", slog.String("error", err.Error()))
			redisClient = client
		default:
			redisClient = client
		}
	}

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil || db == nil {
		return nil, errors.New("server requires a config and a database")
	}
	models.ErrorLogger = middleware.Logger

	repos := repository.NewRepos(db)
	tx := repository.Transactor(db)

	return &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		revocations:     kv.NewRevocationStore(redisClient),
		promMiddleware:  middleware.InitMetrics(serviceName),
		recipeService:   service.NewRecipeService(repos, tx),
		reviewService:   service.NewReviewService(tx),
		voteService:     service.NewVoteService(tx),
		favoriteService: service.NewFavoriteService(repos, tx),
		userService:     service.NewUserService(repos, tx),
	}, nil
}

// App builds the Fiber application with every middleware and route attached.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "More-Recipes API",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.Feedback{
				Status:  models.StatusFailed,
				Message: "Too many requests, please try again later",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Welcome)
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api/v1")
	api.Get("/", s.Welcome)
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "More-Recipes Metrics Dashboard",
	}))
	api.Get("/swagger/*", swagger.HandlerDefault)

	auth := s.AuthRequired()

	users := api.Group("/users")
	users.Post("/signup",
		middleware.RateLimit(s.redis, 5, 10*time.Minute, "signup"),
		validateBody(validation.ValidateSignup), s.Signup)
	users.Post("/signin",
		middleware.RateLimit(s.redis, 10, 5*time.Minute, "signin"),
		validateBody(validation.ValidateSignin), s.Signin)
	users.Post("/signout", auth, s.Signout)
	users.Get("/me", auth, s.GetMyProfile)
	users.Put("/me", auth, validateBody(validation.ValidateProfileUpdate), s.UpdateMyProfile)
	users.Get("/me/recipes", auth, s.GetMyRecipes)
	users.Get("/me/favorites", auth, s.GetMyFavorites)

	recipes := api.Group("/recipes")
	recipes.Get("/", validateSortQuery, s.ListRecipes)
	recipes.Post("/", auth, validateBody(validation.ValidateAddRecipe), s.AddRecipe)
	// Specific /:recipeID/:resource routes before the generic /:recipeID ones.
	recipes.Post("/:recipeID/reviews", auth, recipeIDParam,
		validateBody(validation.ValidateReview), s.AddReview)
	recipes.Post("/:recipeID/upvote", auth, recipeIDParam, s.Upvote)
	recipes.Post("/:recipeID/downvote", auth, recipeIDParam, s.Downvote)
	recipes.Post("/:recipeID/favorite", auth, recipeIDParam, s.ToggleFavorite)
	recipes.Get("/:recipeID", recipeIDParam, s.GetRecipe)
	recipes.Put("/:recipeID", auth, recipeIDParam,
		validateBody(validation.ValidateUpdateRecipe), s.UpdateRecipe)
	recipes.Delete("/:recipeID", auth, recipeIDParam, s.DeleteRecipe)

	app.Use(s.NotFound)
}

// Welcome handles GET /api/v1
func (s *Server) Welcome(c *fiber.Ctx) error {
	return models.RespondWithSuccess(c, fiber.StatusOK, "Welcome to More-Recipes", nil)
}

// NotFound answers every unmatched route.
func (s *Server) NotFound(c *fiber.Ctx) error {
	return models.RespondWithError(c, fiber.StatusNotFound,
		&models.AppError{Code: models.CodeNotFound, Message: "Page not found"})
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return models.RespondWithSuccess(c, fiber.StatusOK, "up", fiber.Map{
		"time": time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis is optional, so
// its absence does not fail the probe.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	checks := fiber.Map{
		"database": dbStatus,
		"redis":    redisStatus,
		"time":     time.Now(),
	}
	if dbStatus != "healthy" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.Feedback{
			Status:  models.StatusFailed,
			Message: "unhealthy",
			Data:    checks,
		})
	}
	return models.RespondWithSuccess(c, fiber.StatusOK, "healthy", checks)
}

// errorHandler turns errors that escape a handler into the Failed envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return models.RespondWithError(c, fe.Code, models.NewValidationError(fe.Message))
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// Start serves the API on the configured port. It blocks until the listener
// stops.
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown stops the HTTP server and releases the database and Redis.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if err := database.Close(s.db); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	middleware.Logger.Info("server shutdown complete")
	return errors.Join(errs...)
}
