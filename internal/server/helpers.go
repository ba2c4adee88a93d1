package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/validation"
)

// Fiber locals keys shared by middleware and handlers.
const (
	localUserID      = "userID"
	localRecipeID    = "recipeID"
	localPayload     = "payload"
	localRecipeSort  = "recipeSort"
	localTokenID     = "tokenID"
	localTokenExpiry = "tokenExpiry"
)

// respondError writes err with the status its code maps to.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusFor(err), err)
}

// currentUserID returns the id stored by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(localUserID).(uint)
	return id
}

// recipeIDParam parses :recipeID as a positive integer and stores it for the
// handler. Anything else is reported as a missing recipe.
func recipeIDParam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("recipeID")
	if err != nil || id <= 0 {
		return respondError(c, models.NewInvalidRecipeIDError())
	}
	c.Locals(localRecipeID, uint(id))
	return c.Next()
}

func recipeID(c *fiber.Ctx) uint {
	id, _ := c.Locals(localRecipeID).(uint)
	return id
}

// validateBody decodes the JSON body into T, runs check on it and stores the
// decoded value for the handler. An empty body decodes to the zero T so that
// missing fields are reported by check.
func validateBody[T any](check func(T) validation.Result) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return respondError(c, models.NewValidationError("Invalid request body"))
			}
		}
		if err := check(in).Err(); err != nil {
			return respondError(c, err)
		}
		c.Locals(localPayload, in)
		return c.Next()
	}
}

// payload returns the body stored by validateBody.
func payload[T any](c *fiber.Ctx) T {
	in, _ := c.Locals(localPayload).(T)
	return in
}

// validateSortQuery checks the optional sort and order query parameters. A
// parameter that is present but empty still counts as present.
func validateSortQuery(c *fiber.Ctx) error {
	args := c.Context().QueryArgs()
	var q validation.SortQuery
	if args.Has("sort") {
		v := string(args.Peek("sort"))
		q.Sort = &v
	}
	if args.Has("order") {
		v := string(args.Peek("order"))
		q.Order = &v
	}

	if err := validation.ValidateSortQuery(q).Err(); err != nil {
		return respondError(c, err)
	}
	if q.Sort != nil && q.Order != nil {
		sort := models.ParseRecipeSort(*q.Sort, *q.Order)
		c.Locals(localRecipeSort, &sort)
	}
	return c.Next()
}

func recipeSort(c *fiber.Ctx) *models.RecipeSort {
	sort, _ := c.Locals(localRecipeSort).(*models.RecipeSort)
	return sort
}
