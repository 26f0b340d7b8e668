package task_case

import (
	"context"

	task_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
)

type TaskServiceContract interface {
	LogSubTask(ctx context.Context, actor entity.Actor, taskID string, req *task_dto.LogSubTaskRequest) (*task_dto.LogSubTaskResponse, *app_errors.AppError)
}
