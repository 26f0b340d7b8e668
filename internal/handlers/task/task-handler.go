package task_handlers

import (
	task_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/task-dto"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/Xenn-00/arbeitszeit-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	task_case "github.com/Xenn-00/arbeitszeit-meister/internal/use-cases/task-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TaskHandler struct {
	validator *validator.Validate
	service   task_case.TaskServiceContract
	i18n      internal_i18n.Service
}

func NewTaskHandler(db *pgxpool.Pool, redis *redis.Client, i18n internal_i18n.Service) *TaskHandler {
	return newTaskHandler(task_case.NewTaskService(db, redis), i18n)
}

func newTaskHandler(service task_case.TaskServiceContract, i18n internal_i18n.Service) *TaskHandler {
	validate := validator.New()
	validate.RegisterValidation("subTaskStatus", task_dto.IsValidSubTaskStatus)
	validate.RegisterValidation("calendarDate", task_dto.IsValidCalendarDate)
	return &TaskHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *TaskHandler) LogSubTask(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	var req task_dto.LogSubTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.LogSubTask(c.UserContext(), actor, taskID, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "task.subtask_logged", nil), resp, handlers.GetRequestID(c)))
}
