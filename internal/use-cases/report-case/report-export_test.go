package report_case

import (
	"context"
	"errors"
	"testing"

	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	use_cases "github.com/Xenn-00/arbeitszeit-meister/internal/use-cases"
	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestExport_Success(t *testing.T) {
	ctx := context.Background()

	c, store := memoryCache()
	q := new(use_cases.MockTaskQueue)
	service := newTestService(new(MockTaskRepo), new(MockUserRepo), c, q)

	actor := entity.Actor{UserID: "user-1", Role: entity.RoleStaff}

	q.On("EnqueueMonthlyReportExport", mock.MatchedBy(func(p *worker_task.ExportMonthlyReportPayload) bool {
		return p.RequestedBy == "user-1" && p.Filter.UserID != nil && *p.Filter.UserID == "user-1" && p.Filter.Month == 3
	})).Return(nil)

	resp, err := service.RequestExport(ctx, actor, &report_dto.MonthlySheetQuery{Month: 3, Year: 2024})

	assert.Nil(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ExportID)
	assert.Equal(t, report_dto.ExportPending, resp.Status)
	assert.Equal(t, fixedNow, resp.RequestedAt)
	assert.Contains(t, store, exportCacheKey(resp.ExportID))

	q.AssertExpectations(t)
}

func TestRequestExport_ScopeViolation(t *testing.T) {
	ctx := context.Background()

	c, store := memoryCache()
	q := new(use_cases.MockTaskQueue)
	service := newTestService(new(MockTaskRepo), new(MockUserRepo), c, q)

	resp, err := service.RequestExport(ctx, entity.Actor{UserID: "user-1", Role: entity.RoleStaff}, &report_dto.MonthlySheetQuery{Month: 3, Year: 2024, UserID: strPtr("user-2")})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Empty(t, store)
	q.AssertNotCalled(t, "EnqueueMonthlyReportExport", mock.Anything)
}

func TestRequestExport_EnqueueFailure(t *testing.T) {
	ctx := context.Background()

	c, store := memoryCache()
	q := new(use_cases.MockTaskQueue)
	service := newTestService(new(MockTaskRepo), new(MockUserRepo), c, q)

	q.On("EnqueueMonthlyReportExport", mock.Anything).Return(errors.New("redis unavailable"))

	resp, err := service.RequestExport(ctx, entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}, &report_dto.MonthlySheetQuery{Month: 3, Year: 2024})

	assert.Nil(t, resp)
	require.NotNil(t, err)
	assert.Equal(t, 500, err.Code)
	assert.Equal(t, "report.export_enqueue_failed", err.MessageKey)
	assert.Empty(t, store)
	assert.Equal(t, 1, c.DelCalled)
}

func TestGetExport_Access(t *testing.T) {
	ctx := context.Background()

	c, _ := memoryCache()
	service := newTestService(new(MockTaskRepo), new(MockUserRepo), c, nil)

	record := &report_dto.ExportResponse{
		ExportID:    "0190b0c4-0000-7000-8000-000000000001",
		Status:      report_dto.ExportPending,
		RequestedBy: "user-1",
		RequestedAt: fixedNow,
	}
	require.Nil(t, c.Set(ctx, exportCacheKey(record.ExportID), record, 0))

	got, err := service.GetExport(ctx, entity.Actor{UserID: "user-1", Role: entity.RoleStaff}, record.ExportID)
	assert.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, report_dto.ExportPending, got.Status)

	got, err = service.GetExport(ctx, entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}, record.ExportID)
	assert.Nil(t, err)
	assert.NotNil(t, got)

	got, err = service.GetExport(ctx, entity.Actor{UserID: "user-2", Role: entity.RoleStaff}, record.ExportID)
	assert.Nil(t, got)
	require.NotNil(t, err)
	assert.Equal(t, 403, err.Code)

	got, err = service.GetExport(ctx, entity.Actor{UserID: "user-1", Role: entity.RoleStaff}, "0190b0c4-0000-7000-8000-000000000002")
	assert.Nil(t, got)
	require.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "report.export_not_found", err.MessageKey)
}

func TestBuildExport_StoresRows(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	c, _ := memoryCache()
	service := newTestService(repo, new(MockUserRepo), c, nil)

	userID := "user-1"
	filter := entity.TaskListFilter{Month: 3, Year: 2024, UserID: &userID}
	exportID := "0190b0c4-0000-7000-8000-000000000003"
	require.Nil(t, c.Set(ctx, exportCacheKey(exportID), &report_dto.ExportResponse{
		ExportID:    exportID,
		Status:      report_dto.ExportPending,
		RequestedBy: userID,
		Filter:      filter,
	}, 0))

	repo.On("ListTasksForMonth", mock.Anything, mock.Anything).
		Return([]entity.TaskEntity{marchTask("task-1", userID)}, (*app_errors.AppError)(nil)).
		Once()

	err := service.BuildExport(ctx, &worker_task.ExportMonthlyReportPayload{ExportID: exportID, RequestedBy: userID, Filter: filter})
	require.Nil(t, err)

	got, getErr := service.GetExport(ctx, entity.Actor{UserID: userID, Role: entity.RoleStaff}, exportID)
	require.Nil(t, getErr)
	assert.Equal(t, report_dto.ExportReady, got.Status)
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.Summary)
	assert.Equal(t, 10, got.Summary.TotalWorkDays)
	require.Len(t, got.Rows, 10)
	assert.Equal(t, 1, got.Rows[0].Day)
	assert.Equal(t, worksheet.StatusCompleted, got.Rows[4].Status)

	// Ein zweiter Lauf ist ein No-op.
	require.Nil(t, service.BuildExport(ctx, &worker_task.ExportMonthlyReportPayload{ExportID: exportID, RequestedBy: userID, Filter: filter}))

	repo.AssertExpectations(t)
}

func TestBuildExport_RetryableFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	c, _ := memoryCache()
	service := newTestService(repo, new(MockUserRepo), c, nil)

	filter := entity.TaskListFilter{Month: 3, Year: 2024}
	exportID := "0190b0c4-0000-7000-8000-000000000004"
	require.Nil(t, c.Set(ctx, exportCacheKey(exportID), &report_dto.ExportResponse{ExportID: exportID, Status: report_dto.ExportPending, RequestedBy: "admin-1"}, 0))

	repo.On("ListTasksForMonth", mock.Anything, mock.Anything).
		Return([]entity.TaskEntity(nil), app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", errors.New("boom")))

	err := service.BuildExport(ctx, &worker_task.ExportMonthlyReportPayload{ExportID: exportID, RequestedBy: "admin-1", Filter: filter})

	require.NotNil(t, err)
	assert.True(t, err.Retryable)

	got, getErr := service.GetExport(ctx, entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin}, exportID)
	require.Nil(t, getErr)
	assert.Equal(t, report_dto.ExportPending, got.Status)
}

func TestBuildExport_ExpiredRecordIsSkipped(t *testing.T) {
	repo := new(MockTaskRepo)
	c, _ := memoryCache()
	service := newTestService(repo, new(MockUserRepo), c, nil)

	err := service.BuildExport(context.Background(), &worker_task.ExportMonthlyReportPayload{ExportID: "gone", Filter: entity.TaskListFilter{Month: 3, Year: 2024}})

	assert.Nil(t, err)
	repo.AssertNotCalled(t, "ListTasksForMonth", mock.Anything, mock.Anything)
}

func TestUserMonthlySummary(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaskRepo)
	service := newTestService(repo, new(MockUserRepo), &use_cases.MockCache{}, nil)

	repo.On("ListTasksForMonth", mock.Anything, mock.MatchedBy(func(f *entity.TaskListFilter) bool {
		return f.UserID != nil && *f.UserID == "user-1" && f.Month == 3 && f.Year == 2024
	})).Return([]entity.TaskEntity{marchTask("task-1", "user-1")}, (*app_errors.AppError)(nil))

	sum, err := service.UserMonthlySummary(ctx, &entity.UserEntity{ID: "user-1"}, 3, 2024)

	assert.Nil(t, err)
	require.NotNil(t, sum)
	assert.Equal(t, 10, sum.CompletionRate)
	assert.Equal(t, 6.0, sum.TotalHoursLogged)
}
