package middleware

import (
	"strings"

	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/Xenn-00/arbeitszeit-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware validiert das Authorization-Header ("Bearer <token>") und verifiziert das PASETO-Token.
// Bei Erfolg setzt es die Context-Lokale "user_id", "name", "role" und, falls vorhanden, "company_id".
// Tokens werden außerhalb dieses Dienstes ausgestellt; hier wird nur geprüft.
func AuthMiddleware(pasetoMaker *utils.PasetoMaker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.missing_header", nil)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_format", nil)
		}

		// Verifizieren via PASETO
		claims, err := pasetoMaker.VerifyToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Msg("Verification error")
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_token", nil)
		}

		// Speichern zu kontext, sodass Handler es nutzen kann
		c.Locals("user_id", claims.UserID)
		c.Locals("name", claims.Name)
		c.Locals("role", claims.Role)
		if claims.CompanyID != "" {
			c.Locals("company_id", claims.CompanyID)
		}

		return c.Next()
	}
}
