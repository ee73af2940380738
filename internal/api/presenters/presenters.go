package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil && err.Error() != message {
		resp.Data = fiber.Map{"error": err.Error()}
	}
	return c.Status(status).JSON(resp)
}

// RawResponse bypasses the envelope for endpoints whose body shape is part of
// the external contract (recipe details, search results).
func RawResponse(c *fiber.Ctx, data any, status int) error {
	return c.Status(status).JSON(data)
}

// NoContent signals an empty result set; not an error.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
