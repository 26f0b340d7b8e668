package report_handlers

import (
	"github.com/Xenn-00/arbeitszeit-meister/internal/config"
	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/Xenn-00/arbeitszeit-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	report_case "github.com/Xenn-00/arbeitszeit-meister/internal/use-cases/report-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ReportHandler struct {
	validator *validator.Validate
	service   report_case.ReportServiceContract
	i18n      internal_i18n.Service
}

func NewReportHandler(db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig, i18n internal_i18n.Service) *ReportHandler {
	return newReportHandler(report_case.NewReportService(db, redis, cfg), i18n)
}

func newReportHandler(service report_case.ReportServiceContract, i18n internal_i18n.Service) *ReportHandler {
	validate := validator.New()
	validate.RegisterValidation("userRole", report_dto.IsValidUserRole)
	return &ReportHandler{
		validator: validate,
		service:   service,
		i18n:      i18n,
	}
}

func (h *ReportHandler) MonthlySheet(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	query, err := h.parseSheetQuery(c)
	if err != nil {
		return err
	}

	resp, err := h.service.MonthlySheet(c.UserContext(), actor, query)
	if err != nil {
		if resp != nil && err.Retryable {
			return handlers.RespondDegraded(c, h.i18n.T(handlers.GetLang(c), err.MessageKey, nil), err, resp)
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "report.monthly_sheet_fetched", nil), resp, handlers.GetRequestID(c)))
}

func (h *ReportHandler) MonthlyReport(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	query, err := h.parseSheetQuery(c)
	if err != nil {
		return err
	}

	resp, err := h.service.MonthlyReport(c.UserContext(), actor, query)
	if err != nil {
		if resp != nil && err.Retryable {
			return handlers.RespondDegraded(c, h.i18n.T(handlers.GetLang(c), err.MessageKey, nil), err, resp)
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "report.monthly_report_fetched", nil), resp, handlers.GetRequestID(c)))
}

func (h *ReportHandler) ListFilterUsers(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var query report_dto.FilterUsersQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}
	if err := h.validator.Struct(query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListFilterUsers(c.UserContext(), actor, &query)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "report.filter_users_fetched", nil), resp, handlers.GetRequestID(c)))
}

func (h *ReportHandler) RequestExport(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req report_dto.MonthlySheetQuery
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}
	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.RequestExport(c.UserContext(), actor, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "report.export_requested", nil), resp, handlers.GetRequestID(c)))
}

func (h *ReportHandler) GetExport(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var param report_dto.ParamExportID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}
	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.GetExport(c.UserContext(), actor, param.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "report.export_fetched", nil), resp, handlers.GetRequestID(c)))
}

func (h *ReportHandler) parseSheetQuery(c *fiber.Ctx) (*report_dto.MonthlySheetQuery, *app_errors.AppError) {
	var query report_dto.MonthlySheetQuery
	if err := c.QueryParser(&query); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(query); err != nil {
		return nil, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return &query, nil
}
