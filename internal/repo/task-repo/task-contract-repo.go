package task_repo

import (
	"context"

	"github.com/Xenn-00/arbeitszeit-meister/internal/abstraction/tx"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
)

type TaskRepoContract interface {
	ListTasksForMonth(ctx context.Context, filter *entity.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError)
	GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError)
	UpsertDay(ctx context.Context, t tx.Tx, log *entity.DayLog) (string, *app_errors.AppError)
	InsertSubTask(ctx context.Context, t tx.Tx, log *entity.DayLog) *app_errors.AppError
	RecomputeDayHours(ctx context.Context, t tx.Tx, dayID string) (float64, *app_errors.AppError)
	RecomputeCounters(ctx context.Context, t tx.Tx, taskID string) (*entity.TaskCounters, *app_errors.AppError)
}
