package middleware

import (
	"slices"

	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles prüft, ob die im Context unter "role" gespeicherte Rolle einer der erlaubten Rollen (allowedRoles) entspricht.
// Ohne Rolle: 401, mit falscher Rolle: 403.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.no_role", nil)
		}

		if slices.Contains(allowedRoles, role) {
			return c.Next()
		}
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}
}
