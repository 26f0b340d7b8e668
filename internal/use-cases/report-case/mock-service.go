package report_case

import (
	"context"

	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
	"github.com/stretchr/testify/mock"
)

var _ ReportServiceContract = (*MockReportService)(nil)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) MonthlySheet(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.MonthlySheetResponse, *app_errors.AppError) {
	args := m.Called(ctx, actor, query)
	return args.Get(0).(*report_dto.MonthlySheetResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportService) MonthlyReport(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.MonthlyReportResponse, *app_errors.AppError) {
	args := m.Called(ctx, actor, query)
	return args.Get(0).(*report_dto.MonthlyReportResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportService) ListFilterUsers(ctx context.Context, actor entity.Actor, query *report_dto.FilterUsersQuery) ([]report_dto.FilterUserItem, *app_errors.AppError) {
	args := m.Called(ctx, actor, query)
	return args.Get(0).([]report_dto.FilterUserItem), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportService) RequestExport(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.ExportResponse, *app_errors.AppError) {
	args := m.Called(ctx, actor, query)
	return args.Get(0).(*report_dto.ExportResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportService) GetExport(ctx context.Context, actor entity.Actor, exportID string) (*report_dto.ExportResponse, *app_errors.AppError) {
	args := m.Called(ctx, actor, exportID)
	return args.Get(0).(*report_dto.ExportResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockReportService) BuildExport(ctx context.Context, payload *worker_task.ExportMonthlyReportPayload) *app_errors.AppError {
	args := m.Called(ctx, payload)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockReportService) UserMonthlySummary(ctx context.Context, user *entity.UserEntity, month, year int) (*worksheet.Summary, *app_errors.AppError) {
	args := m.Called(ctx, user, month, year)
	return args.Get(0).(*worksheet.Summary), args.Get(1).(*app_errors.AppError)
}
