package report_handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	"github.com/Xenn-00/arbeitszeit-meister/internal/middleware"
	report_case "github.com/Xenn-00/arbeitszeit-meister/internal/use-cases/report-case"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	managerID = "01900000-0000-7000-8000-000000000001"
	companyID = "01900000-0000-7000-8000-0000000000c1"
	exportID  = "01900000-0000-7000-8000-0000000000e1"
)

func newTestApp(svc report_case.ReportServiceContract, role string) *fiber.App {
	i18nSvc := i18n.NewInitI18nService()
	h := newReportHandler(svc, i18nSvc)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc)})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("user_id", managerID)
			c.Locals("role", role)
			c.Locals("company_id", companyID)
		}
		return c.Next()
	})

	app.Get("/reports/monthly-sheet", h.MonthlySheet)
	app.Get("/reports/monthly", h.MonthlyReport)
	app.Get("/reports/users", h.ListFilterUsers)
	app.Post("/reports/export", h.RequestExport)
	app.Get("/reports/export/:export_id", h.GetExport)
	return app
}

func isManager(a entity.Actor) bool {
	return a.UserID == managerID && a.Role == entity.RoleManager && a.CompanyID != nil && *a.CompanyID == companyID
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestMonthlySheetHandler_Success(t *testing.T) {
	svc := new(report_case.MockReportService)
	svc.On("MonthlySheet", mock.Anything, mock.MatchedBy(isManager), mock.MatchedBy(func(q *report_dto.MonthlySheetQuery) bool {
		return q.Month == 3 && q.Year == 2024 && q.Role != nil && *q.Role == "staff"
	})).Return(&report_dto.MonthlySheetResponse{Month: 3, Year: 2024, DaysInMonth: 31}, (*app_errors.AppError)(nil))

	app := newTestApp(svc, "manager")
	status, body := send(t, app, httptest.NewRequest(http.MethodGet, "/reports/monthly-sheet?month=3&year=2024&role=staff", nil))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Monthly sheet loaded.", body["message"])
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 31, data["days_in_month"])
	svc.AssertExpectations(t)
}

func TestMonthlySheetHandler_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"month out of range", "month=13&year=2024"},
		{"missing year", "month=3"},
		{"unknown role", "month=3&year=2024&role=boss"},
		{"user id not uuid", "month=3&year=2024&user_id=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(report_case.MockReportService)
			app := newTestApp(svc, "admin")

			status, body := send(t, app, httptest.NewRequest(http.MethodGet, "/reports/monthly-sheet?"+tt.query, nil))

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "error", body["status"])
			svc.AssertNotCalled(t, "MonthlySheet", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestMonthlySheetHandler_Unauthenticated(t *testing.T) {
	svc := new(report_case.MockReportService)
	app := newTestApp(svc, "")

	status, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/reports/monthly-sheet?month=3&year=2024", nil))

	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMonthlySheetHandler_Superseded(t *testing.T) {
	svc := new(report_case.MockReportService)
	svc.On("MonthlySheet", mock.Anything, mock.Anything, mock.Anything).
		Return((*report_dto.MonthlySheetResponse)(nil), app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict.request_superseded", nil))

	app := newTestApp(svc, "manager")
	status, body := send(t, app, httptest.NewRequest(http.MethodGet, "/reports/monthly-sheet?month=3&year=2024", nil))

	assert.Equal(t, fiber.StatusConflict, status)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, app_errors.ErrConflict, errBody["type"])
}

func TestMonthlyReportHandler(t *testing.T) {
	svc := new(report_case.MockReportService)
	svc.On("MonthlyReport", mock.Anything, mock.Anything, mock.Anything).
		Return(&report_dto.MonthlyReportResponse{Sheet: &report_dto.MonthlySheetResponse{Month: 3, Year: 2024}}, (*app_errors.AppError)(nil))

	app := newTestApp(svc, "admin")
	status, body := send(t, app, httptest.NewRequest(http.MethodGet, "/reports/monthly?month=3&year=2024", nil))

	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Contains(t, data, "report")
}

func TestListFilterUsersHandler(t *testing.T) {
	svc := new(report_case.MockReportService)
	svc.On("ListFilterUsers", mock.Anything, mock.MatchedBy(isManager), mock.Anything).
		Return([]report_dto.FilterUserItem{{ID: "u-2", Name: "Ben"}}, (*app_errors.AppError)(nil))

	app := newTestApp(svc, "manager")
	status, body := send(t, app, httptest.NewRequest(http.MethodGet, "/reports/users?role=staff", nil))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)
}

func TestRequestExportHandler(t *testing.T) {
	svc := new(report_case.MockReportService)
	svc.On("RequestExport", mock.Anything, mock.MatchedBy(isManager), mock.MatchedBy(func(q *report_dto.MonthlySheetQuery) bool {
		return q.Month == 3 && q.Year == 2024
	})).Return(&report_dto.ExportResponse{ExportID: exportID, Status: report_dto.ExportPending}, (*app_errors.AppError)(nil))

	app := newTestApp(svc, "manager")
	req := httptest.NewRequest(http.MethodPost, "/reports/export", strings.NewReader(`{"month":3,"year":2024}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	status, body := send(t, app, req)

	assert.Equal(t, fiber.StatusAccepted, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, exportID, data["export_id"])
	assert.Equal(t, string(report_dto.ExportPending), data["status"])
}

func TestRequestExportHandler_InvalidBody(t *testing.T) {
	svc := new(report_case.MockReportService)
	app := newTestApp(svc, "manager")

	req := httptest.NewRequest(http.MethodPost, "/reports/export", strings.NewReader(`{"month":0}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	status, _ := send(t, app, req)

	assert.Equal(t, fiber.StatusBadRequest, status)
	svc.AssertNotCalled(t, "RequestExport", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetExportHandler(t *testing.T) {
	svc := new(report_case.MockReportService)
	svc.On("GetExport", mock.Anything, mock.Anything, exportID).
		Return(&report_dto.ExportResponse{ExportID: exportID, Status: report_dto.ExportReady}, (*app_errors.AppError)(nil))

	app := newTestApp(svc, "manager")
	status, body := send(t, app, httptest.NewRequest(http.MethodGet, "/reports/export/"+exportID, nil))

	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, string(report_dto.ExportReady), data["status"])
}

func TestGetExportHandler_InvalidID(t *testing.T) {
	svc := new(report_case.MockReportService)
	app := newTestApp(svc, "manager")

	status, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/reports/export/not-a-uuid", nil))

	assert.Equal(t, fiber.StatusBadRequest, status)
	svc.AssertNotCalled(t, "GetExport", mock.Anything, mock.Anything, mock.Anything)
}

func TestMonthlySheetHandler_UpstreamUnavailableReturnsEmptySheet(t *testing.T) {
	svc := new(report_case.MockReportService)
	svc.On("MonthlySheet", mock.Anything, mock.Anything, mock.Anything).
		Return(&report_dto.MonthlySheetResponse{Month: 3, Year: 2024, DaysInMonth: 31, Tasks: []report_dto.TaskRow{}},
			app_errors.NewUnavailableError("report.upstream_unavailable", nil))

	app := newTestApp(svc, "admin")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/monthly-sheet?month=3&year=2024", nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "5", resp.Header.Get(fiber.HeaderRetryAfter))
	assert.Equal(t, "Task data is currently unavailable. Please retry.", body["message"])
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 31, data["days_in_month"])
	assert.Empty(t, data["tasks"])
	errs := body["errors"].(map[string]any)
	assert.EqualValues(t, 503, errs["code"])
}
