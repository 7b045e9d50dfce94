package middleware

import (
	"godown-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAuth ensures a user is in the session. Returns 401 with the
// standard error format if not; the client redirects to login.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals(userLocal)
		if user == nil {
			return response.Unauthorized(c, "Please log in again")
		}
		return c.Next()
	}
}

// RequireRole ensures the session user has the given role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, ok := c.Locals(userLocal).(map[string]interface{})
		if !ok {
			return response.Unauthorized(c, "Please log in again")
		}
		if r, _ := m["role"].(string); r != role {
			return response.Error(c, "Forbidden", fiber.StatusForbidden, nil)
		}
		return c.Next()
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// GetMobile returns the session user's mobile number, or "" if absent.
func GetMobile(c *fiber.Ctx) string {
	if m, ok := c.Locals(userLocal).(map[string]interface{}); ok {
		mobile, _ := m["mobile"].(string)
		return mobile
	}
	return ""
}
