package task_case

import (
	"context"

	task_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/stretchr/testify/mock"
)

var _ TaskServiceContract = (*MockTaskService)(nil)

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) LogSubTask(ctx context.Context, actor entity.Actor, taskID string, req *task_dto.LogSubTaskRequest) (*task_dto.LogSubTaskResponse, *app_errors.AppError) {
	args := m.Called(ctx, actor, taskID, req)
	return args.Get(0).(*task_dto.LogSubTaskResponse), args.Get(1).(*app_errors.AppError)
}
