package report_case

import (
	"context"

	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	worker_task "github.com/Xenn-00/arbeitszeit-meister/internal/worker/tasks"
	"github.com/Xenn-00/arbeitszeit-meister/internal/worksheet"
)

type ReportServiceContract interface {
	MonthlySheet(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.MonthlySheetResponse, *app_errors.AppError)
	MonthlyReport(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.MonthlyReportResponse, *app_errors.AppError)
	ListFilterUsers(ctx context.Context, actor entity.Actor, query *report_dto.FilterUsersQuery) ([]report_dto.FilterUserItem, *app_errors.AppError)
	RequestExport(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*report_dto.ExportResponse, *app_errors.AppError)
	GetExport(ctx context.Context, actor entity.Actor, exportID string) (*report_dto.ExportResponse, *app_errors.AppError)
	BuildExport(ctx context.Context, payload *worker_task.ExportMonthlyReportPayload) *app_errors.AppError
	UserMonthlySummary(ctx context.Context, user *entity.UserEntity, month, year int) (*worksheet.Summary, *app_errors.AppError)
}
