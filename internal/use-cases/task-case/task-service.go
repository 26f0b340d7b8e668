package task_case

import (
	"context"
	"strings"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/abstraction/cache"
	"github.com/Xenn-00/arbeitszeit-meister/internal/abstraction/tx"
	task_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	task_repo "github.com/Xenn-00/arbeitszeit-meister/internal/repo/task-repo"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	defaultHoursSpent = 5.0
	maxHoursSpent     = 9.0
)

type TaskService struct {
	repo      task_repo.TaskRepoContract
	txManager tx.TxManager
	cache     cache.Cache
	now       func() time.Time
}

func NewTaskService(db *pgxpool.Pool, redis *redis.Client) TaskServiceContract {
	return &TaskService{
		repo:      task_repo.NewTaskRepo(db),
		txManager: tx.NewPgxTxManager(db),
		cache:     cache.NewRedisCache(redis),
		now:       time.Now,
	}
}

// LogSubTask trägt eine Teilaufgabe für einen Tag ein und schreibt die Zähler der Aufgabe fort.
func (s *TaskService) LogSubTask(ctx context.Context, actor entity.Actor, taskID string, req *task_dto.LogSubTaskRequest) (*task_dto.LogSubTaskResponse, *app_errors.AppError) {
	date, ok := entity.ParseDate(req.Date)
	if !ok {
		return nil, fieldError("date", "calendarDate", "validation.calendar_date", nil)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fieldError("description", "required", "validation.required", nil)
	}

	hours := defaultHoursSpent
	if req.HoursSpent != nil {
		hours = *req.HoursSpent
	}
	if hours < 0 || hours > maxHoursSpent {
		return nil, fieldError("hours_spent", "max", "validation.max", map[string]any{"max": maxHoursSpent})
	}

	// Staff kann den Status nicht wählen, neue Einträge sind immer "in-progress".
	status := entity.SubTaskInProgress
	if req.Status != nil && actor.CanSetSubTaskStatus() {
		status = entity.SubTaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, fieldError("status", "subTaskStatus", "validation.sub_task_status", nil)
		}
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := canLogOn(actor, task); err != nil {
		return nil, err
	}

	if !worksheet.IsDayInRange(date.Day(), date.Month(), date.Year(), task.StartDate.Time, task.EndDate.Time) {
		return nil, fieldError("date", "dateInRange", "validation.date_out_of_range", map[string]any{
			"start": task.StartDate.String(),
			"end":   task.EndDate.String(),
		})
	}

	dayID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}
	subID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	now := s.now()
	sub := entity.SubTask{
		ID:          subID.String(),
		Description: description,
		Status:      status,
		HoursSpent:  hours,
		Remarks:     trimmed(req.Remarks),
		CreatedAt:   &now,
	}
	if status == entity.SubTaskCompleted {
		sub.CompletedAt = &now
	}

	dayLog := &entity.DayLog{
		DayID:    dayID.String(),
		TaskID:   task.ID,
		Date:     date,
		SubTask:  sub,
		Remarks:  trimmed(req.DayRemarks),
		LoggedBy: actor.UserID,
	}

	tx, txErr := s.txManager.Begin(ctx)
	if txErr != nil {
		return nil, txErr
	}
	defer tx.Rollback(ctx)

	// Existiert der Tag schon, liefert UpsertDay dessen ID.
	storedDayID, err := s.repo.UpsertDay(ctx, tx, dayLog)
	if err != nil {
		return nil, err
	}
	dayLog.DayID = storedDayID

	if err := s.repo.InsertSubTask(ctx, tx, dayLog); err != nil {
		return nil, err
	}

	hoursLogged, err := s.repo.RecomputeDayHours(ctx, tx, storedDayID)
	if err != nil {
		return nil, err
	}

	counters, err := s.repo.RecomputeCounters(ctx, tx, task.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// Gecachte Aufgabenlisten sind ab jetzt veraltet.
	if _, err := s.cache.Bump(ctx, cache.TaskGenerationKey); err != nil {
		log.Warn().Err(err).Str("task_id", task.ID).Msg("Failed to bump task cache generation")
	}

	return &task_dto.LogSubTaskResponse{
		TaskID:      task.ID,
		DayID:       storedDayID,
		Date:        date,
		SubTask:     sub,
		HoursLogged: hoursLogged,
		Counters:    *counters,
	}, nil
}

func canLogOn(actor entity.Actor, task *entity.TaskEntity) *app_errors.AppError {
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleManager:
		if actor.CompanyID != nil && task.Company.ID == *actor.CompanyID {
			return nil
		}
	case entity.RoleStaff:
		if task.AssignedTo.ID == actor.UserID {
			return nil
		}
	}
	return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
}

func fieldError(field, reason, key string, params map[string]any) *app_errors.AppError {
	return app_errors.NewValidationError([]app_errors.FieldError{{
		Field:      field,
		Reason:     reason,
		MessageKey: key,
		Params:     params,
	}})
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
