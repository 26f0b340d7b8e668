package handlers

import (
	"strconv"

	"github.com/Xenn-00/arbeitszeit-meister/internal/dtos"
	task_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// CreateResponse erstellt eine standardisierte WebResponse.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

// RespondDegraded antwortet mit dem Status eines wiederholbaren Fehlers und liefert trotzdem die (leeren) Daten mit.
func RespondDegraded[T any](c *fiber.Ctx, message string, appErr *app_errors.AppError, data T) error {
	reqID := GetRequestID(c)
	log.Warn().Err(appErr).Str("request_id", reqID).Msg("responding with empty data")

	resp := CreateResponse(message, data, reqID)
	resp.Errors = &dtos.ErrorResponse{Code: appErr.Code, Message: message}

	c.Set(fiber.HeaderRetryAfter, strconv.Itoa(app_errors.RetryAfterSeconds))
	return c.Status(appErr.Code).JSON(resp)
}

func GetUserID(c *fiber.Ctx) (string, *app_errors.AppError) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return userID, nil
}

// GetActor baut aus den Token-Angaben den Benutzer der Anfrage. Die Rolle wird nie aus Query oder Body gelesen.
func GetActor(c *fiber.Ctx) (entity.Actor, *app_errors.AppError) {
	userID, err := GetUserID(c)
	if err != nil {
		return entity.Actor{}, err
	}

	role, _ := c.Locals("role").(string)
	if !entity.UserRole(role).IsValid() {
		return entity.Actor{}, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}

	actor := entity.Actor{UserID: userID, Role: entity.UserRole(role)}
	if companyID, ok := c.Locals("company_id").(string); ok && companyID != "" {
		actor.CompanyID = &companyID
	}
	return actor, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, ok := c.Locals("lang").(string)
	if !ok || lang == "" {
		return "en"
	}
	return lang
}

func GetParamTaskID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param task_dto.ParamTaskID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}
