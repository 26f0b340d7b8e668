package routers

import (
	"github.com/Xenn-00/arbeitszeit-meister/internal/handlers"
	"github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// HealthRouter registriert Health- und Readiness-Endpoints auf dem gegebenen Fiber-Router.
func HealthRouter(app fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n i18n.Service) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Health-OK",
			"message": i18n.T(handlers.GetLang(c), "health.ok", nil),
		})
	})

	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Lebt.")
	})

	// Bereit ist der Dienst erst, wenn Redis und Datenbank antworten.
	app.Get("/readyz", func(c *fiber.Ctx) error {
		if err := redis.Ping(c.Context()).Err(); err != nil {
			log.Warn().Err(err).Msg("Readiness: Redis ist nicht bereit")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "Fehlversuch",
				"error":  i18n.T(handlers.GetLang(c), "health.not_ready", map[string]any{"Component": "redis"}),
			})
		}

		if err := db.Ping(c.Context()); err != nil {
			log.Warn().Err(err).Msg("Readiness: Datenbank ist nicht bereit")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "Fehlversuch",
				"error":  i18n.T(handlers.GetLang(c), "health.not_ready", map[string]any{"Component": "postgres"}),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Bereit",
			"message": i18n.T(handlers.GetLang(c), "health.ok", nil),
		})
	})
}
