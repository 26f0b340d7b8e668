package routers

import (
	"fmt"
	"net"
	"strconv"

	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	report_handlers "github.com/Xenn-00/arbeitszeit-meister/internal/handlers/report"
	"github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	"github.com/Xenn-00/arbeitszeit-meister/internal/middleware"
	"github.com/Xenn-00/arbeitszeit-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ReportRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfg *config.AppConfig) {
	r := api.Group("/reports", middleware.AuthMiddleware(paseto))
	reportHandler := report_handlers.NewReportHandler(db, redis, cfg, i18n)

	r.Get("/monthly-sheet", reportHandler.MonthlySheet)
	r.Get("/monthly", reportHandler.MonthlyReport)
	r.Get("/users", reportHandler.ListFilterUsers)
	r.Post("/export", exportLimiter(redis, cfg), reportHandler.RequestExport)
	r.Get("/export/:export_id", reportHandler.GetExport)
}

// exportLimiter begrenzt Exportaufträge pro Benutzer; der Zähler liegt in Redis, damit er für alle Instanzen gilt.
func exportLimiter(redis *redis.Client, cfg *config.AppConfig) fiber.Handler {
	// prepare redis storage for rate limiter fiber
	host, portRaw, err := net.SplitHostPort(redis.Options().Addr)
	if err != nil {
		host, portRaw = redis.Options().Addr, "6379"
	}
	port, err := strconv.Atoi(portRaw)
	if err != nil {
		port = 6379
	}
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     host,
		Password: redis.Options().Password,
		Port:     port,
		Database: 1,
	})

	return limiter.New(limiter.Config{
		Max:        cfg.REPORT.ExportLimitMax,
		Expiration: cfg.REPORT.ExportLimitFor,
		KeyGenerator: func(c *fiber.Ctx) string {
			userID := c.Locals("user_id")
			if userID == nil {
				return "export:ip:" + c.IP() // fallback to ip
			}
			return fmt.Sprintf("export:%v", userID)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.ErrTooManyRequests
		},
		Storage: redisStore,
	})
}
