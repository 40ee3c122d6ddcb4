package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/pkg/apperr"
)

// ErrorResponse carries the same text under both keys; older clients read
// "message" on auth routes and "error" everywhere else.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message, Message: message})
}

// Fail maps a use case error to a status code. Client-facing errors keep
// their text; everything else is reported with fallback.
func Fail(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return Error(c, http.StatusBadRequest, apperr.Message(err))
	case errors.Is(err, apperr.ErrUnauthorized):
		return Error(c, http.StatusUnauthorized, apperr.Message(err))
	case errors.Is(err, apperr.ErrNotFound):
		return Error(c, http.StatusNotFound, apperr.Message(err))
	default:
		return Error(c, http.StatusInternalServerError, fallback)
	}
}
