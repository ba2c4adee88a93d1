package models

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Feedback statuses.
const (
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

// Feedback is the envelope every API response is written in.
type Feedback struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    any               `json:"data,omitempty"`
}

// ErrorLogger receives internal failures before they are masked.
// It is replaced by the server with the structured application logger.
var ErrorLogger = slog.Default()

// RespondWithSuccess writes a Success envelope.
func RespondWithSuccess(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Feedback{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondWithError writes a Failed envelope. Internal causes are logged and
// replaced by a generic message.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	response := Feedback{Status: StatusFailed}

	var appErr *AppError
	switch {
	case errors.As(err, &appErr) && appErr.Code != CodeInternal && status < fiber.StatusInternalServerError:
		response.Message = appErr.Message
		response.Errors = appErr.Fields
	default:
		ErrorLogger.ErrorContext(c.UserContext(), "request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		response.Message = "Internal server error"
	}

	return c.Status(status).JSON(response)
}
