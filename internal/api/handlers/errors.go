package handlers

import (
	"errors"

	"recipehub-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain errors to the HTTP status conventions of the
// service: 400 validation, 401 session, 402 upstream quota, 404 resolution
// exhausted, 409 duplicate username, 500 otherwise.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRecipeData),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidProgressSteps):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrCredentialsIncorrect),
		errors.Is(err, domain.ErrNoActiveSession),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUpstreamQuota):
		return fiber.StatusPaymentRequired
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
