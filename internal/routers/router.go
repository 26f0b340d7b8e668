package routers

import (
	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	"github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	"github.com/Xenn-00/arbeitszeit-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfg *config.AppConfig) {
	api := app.Group("/api/v1")

	ReportRouter(api, db, redis, i18n, paseto, cfg)
	TaskRouter(api, db, redis, i18n, paseto)
	HealthRouter(api, db, redis, i18n)
}
