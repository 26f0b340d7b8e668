package report_case

import (
	"context"

	"github.com/Xenn-00/arbeitszeit-meister/internal/abstraction/tx"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	task_repo "github.com/Xenn-00/arbeitszeit-meister/internal/repo/task-repo"
	user_repo "github.com/Xenn-00/arbeitszeit-meister/internal/repo/user-repo"
	"github.com/stretchr/testify/mock"
)

var _ task_repo.TaskRepoContract = (*MockTaskRepo)(nil)
var _ user_repo.UserRepoContract = (*MockUserRepo)(nil)

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) ListTasksForMonth(ctx context.Context, filter *entity.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) GetTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) UpsertDay(ctx context.Context, t tx.Tx, log *entity.DayLog) (string, *app_errors.AppError) {
	args := m.Called(ctx, t, log)
	return args.String(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) InsertSubTask(ctx context.Context, t tx.Tx, log *entity.DayLog) *app_errors.AppError {
	args := m.Called(ctx, t, log)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) RecomputeDayHours(ctx context.Context, t tx.Tx, dayID string) (float64, *app_errors.AppError) {
	args := m.Called(ctx, t, dayID)
	return args.Get(0).(float64), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) RecomputeCounters(ctx context.Context, t tx.Tx, taskID string) (*entity.TaskCounters, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID)
	return args.Get(0).(*entity.TaskCounters), args.Get(1).(*app_errors.AppError)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) ListUsers(ctx context.Context, filter *entity.UserListFilter) ([]entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) ListActiveUsers(ctx context.Context) ([]entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.UserEntity), args.Get(1).(*app_errors.AppError)
}
