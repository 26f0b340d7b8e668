package routers

import (
	task_handlers "github.com/Xenn-00/arbeitszeit-meister/internal/handlers/task"
	"github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	"github.com/Xenn-00/arbeitszeit-meister/internal/middleware"
	"github.com/Xenn-00/arbeitszeit-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func TaskRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	r := api.Group("/tasks", middleware.AuthMiddleware(paseto))
	taskHandler := task_handlers.NewTaskHandler(db, redis, i18n)

	r.Post("/:task_id/subtasks", middleware.RequireRoles("admin", "manager", "staff"), taskHandler.LogSubTask)
}
