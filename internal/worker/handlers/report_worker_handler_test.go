package worker_handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	report_case "github.com/Xenn-00/arbeitszeit-meister/internal/use-cases/report-case"
	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*WorkerHander, *report_case.MockReportService, *report_case.MockUserRepo, *MockMailer) {
	reports := new(report_case.MockReportService)
	users := new(report_case.MockUserRepo)
	mailer := new(MockMailer)

	h := &WorkerHander{
		reports: reports,
		ur:      users,
		mailer:  mailer,
		now:     func() time.Time { return time.Date(2024, time.April, 1, 6, 0, 0, 0, time.UTC) },
	}
	return h, reports, users, mailer
}

func exportTask(t *testing.T, p worker_task.ExportMonthlyReportPayload) *asynq.Task {
	body, err := json.Marshal(p)
	require.NoError(t, err)
	return asynq.NewTask(worker_task.TaskExportMonthlyReport, body)
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantMonth int
		wantYear  int
	}{
		{"mid year", time.Date(2024, time.April, 1, 6, 0, 0, 0, time.UTC), 3, 2024},
		{"january wraps", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), 12, 2023},
		{"end of month", time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC), 2, 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := previousMonth(tt.now)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantYear, year)
		})
	}
}

func TestExportMonthlyReport_Success(t *testing.T) {
	h, reports, _, _ := newTestHandler()
	payload := worker_task.ExportMonthlyReportPayload{
		ExportID:    "exp-1",
		RequestedBy: "user-1",
		Filter:      entity.TaskListFilter{Month: 3, Year: 2024},
	}

	reports.On("BuildExport", mock.Anything, mock.MatchedBy(func(p *worker_task.ExportMonthlyReportPayload) bool {
		return p.ExportID == "exp-1" && p.Filter.Month == 3
	})).Return((*app_errors.AppError)(nil))

	err := h.ExportMonthlyReport()(context.Background(), exportTask(t, payload))

	require.NoError(t, err)
	reports.AssertExpectations(t)
}

func TestExportMonthlyReport_RetryableError(t *testing.T) {
	h, reports, _, _ := newTestHandler()
	reports.On("BuildExport", mock.Anything, mock.Anything).
		Return(app_errors.NewUnavailableError("report.upstream_unavailable", errors.New("db down")))

	err := h.ExportMonthlyReport()(context.Background(), exportTask(t, worker_task.ExportMonthlyReportPayload{ExportID: "exp-1"}))

	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestExportMonthlyReport_PermanentError(t *testing.T) {
	h, reports, _, _ := newTestHandler()
	reports.On("BuildExport", mock.Anything, mock.Anything).
		Return(app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", errors.New("boom")))

	err := h.ExportMonthlyReport()(context.Background(), exportTask(t, worker_task.ExportMonthlyReportPayload{ExportID: "exp-1"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestExportMonthlyReport_InvalidPayload(t *testing.T) {
	h, reports, _, _ := newTestHandler()

	err := h.ExportMonthlyReport()(context.Background(), asynq.NewTask(worker_task.TaskExportMonthlyReport, []byte("{")))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	reports.AssertNotCalled(t, "BuildExport", mock.Anything, mock.Anything)
}

func TestMonthlySummaryDigest_PreviousMonth(t *testing.T) {
	h, reports, users, mailer := newTestHandler()
	anna := entity.UserEntity{ID: "u-1", Email: "anna@example.com", Name: "Anna", IsActive: true}
	ben := entity.UserEntity{ID: "u-2", Email: "ben@example.com", Name: "Ben", IsActive: true}

	users.On("ListActiveUsers", mock.Anything).Return([]entity.UserEntity{anna, ben}, (*app_errors.AppError)(nil))
	reports.On("UserMonthlySummary", mock.Anything, mock.MatchedBy(func(u *entity.UserEntity) bool { return u.ID == "u-1" }), 3, 2024).
		Return(&worksheet.Summary{TotalWorkDays: 10, CompletedDays: 4, CompletionRate: 40}, (*app_errors.AppError)(nil))
	reports.On("UserMonthlySummary", mock.Anything, mock.MatchedBy(func(u *entity.UserEntity) bool { return u.ID == "u-2" }), 3, 2024).
		Return(&worksheet.Summary{}, (*app_errors.AppError)(nil))
	mailer.On("SendMonthlySummary", mock.MatchedBy(func(u *entity.UserEntity) bool { return u.ID == "u-1" }), 3, 2024, mock.Anything).
		Return(nil)

	err := h.MonthlySummaryDigest()(context.Background(), asynq.NewTask(worker_task.TaskMonthlySummaryDigest, nil))

	require.NoError(t, err)
	mailer.AssertNumberOfCalls(t, "SendMonthlySummary", 1)
	reports.AssertExpectations(t)
}

func TestMonthlySummaryDigest_ExplicitPeriod(t *testing.T) {
	h, reports, users, mailer := newTestHandler()
	anna := entity.UserEntity{ID: "u-1", Email: "anna@example.com", Name: "Anna", IsActive: true}

	users.On("ListActiveUsers", mock.Anything).Return([]entity.UserEntity{anna}, (*app_errors.AppError)(nil))
	reports.On("UserMonthlySummary", mock.Anything, mock.Anything, 2, 2024).
		Return(&worksheet.Summary{TotalWorkDays: 5}, (*app_errors.AppError)(nil))
	mailer.On("SendMonthlySummary", mock.Anything, 2, 2024, mock.Anything).Return(nil)

	body, _ := json.Marshal(worker_task.MonthlySummaryDigestPayload{Month: 2, Year: 2024})
	err := h.MonthlySummaryDigest()(context.Background(), asynq.NewTask(worker_task.TaskMonthlySummaryDigest, body))

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestMonthlySummaryDigest_AllDeliveriesFail(t *testing.T) {
	h, reports, users, mailer := newTestHandler()
	anna := entity.UserEntity{ID: "u-1", Email: "anna@example.com", Name: "Anna", IsActive: true}

	users.On("ListActiveUsers", mock.Anything).Return([]entity.UserEntity{anna}, (*app_errors.AppError)(nil))
	reports.On("UserMonthlySummary", mock.Anything, mock.Anything, 3, 2024).
		Return(&worksheet.Summary{TotalWorkDays: 10}, (*app_errors.AppError)(nil))
	mailer.On("SendMonthlySummary", mock.Anything, 3, 2024, mock.Anything).Return(errors.New("smtp down"))

	err := h.MonthlySummaryDigest()(context.Background(), asynq.NewTask(worker_task.TaskMonthlySummaryDigest, nil))

	assert.ErrorIs(t, err, errDigestUndelivered)
}

func TestMonthlySummaryDigest_ListUsersFails(t *testing.T) {
	h, reports, users, mailer := newTestHandler()

	users.On("ListActiveUsers", mock.Anything).
		Return([]entity.UserEntity(nil), app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", errors.New("db down")))

	err := h.MonthlySummaryDigest()(context.Background(), asynq.NewTask(worker_task.TaskMonthlySummaryDigest, nil))

	require.Error(t, err)
	reports.AssertNotCalled(t, "UserMonthlySummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendMonthlySummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
