package middleware

import (
	"os"
	"time"

	"recipehub-backend/domain"
	"recipehub-backend/internal/api/presenters"
	"recipehub-backend/internal/utils"
	"recipehub-backend/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		// SessionMiddleware rejects requests without a valid session cookie
		// and refreshes the cookie on activity.
		SessionMiddleware(sessions session.SessionService) fiber.Handler
		// OptionalSessionMiddleware populates the user id when a valid
		// session cookie is present but lets anonymous requests through.
		OptionalSessionMiddleware(sessions session.SessionService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	// Credentials and a wildcard origin cannot be combined, so an
	// unconfigured frontend falls back to a concrete local origin.
	origins := utils.GetConfig("FRONTEND_URL")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

func (m *middleware) SessionMiddleware(sessions session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrNoActiveSession.Error(), nil)
		}

		userID, err := sessions.Validate(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrNoActiveSession.Error(), nil)
		}

		if refreshed, ok, err := sessions.Refresh(token); err == nil && ok {
			SetSessionCookie(c, refreshed, sessions.Duration())
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

func (m *middleware) OptionalSessionMiddleware(sessions session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(session.CookieName); token != "" {
			if userID, err := sessions.Validate(token); err == nil {
				c.Locals("user_id", userID)
				if refreshed, ok, err := sessions.Refresh(token); err == nil && ok {
					SetSessionCookie(c, refreshed, sessions.Duration())
				}
			}
		}
		return c.Next()
	}
}

func SetSessionCookie(c *fiber.Ctx, token string, duration time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Expires:  time.Now().Add(duration),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   os.Getenv("IS_PROD") == "true",
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// LoggedInUserID returns the session-derived user id, empty for anonymous
// requests.
func LoggedInUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
