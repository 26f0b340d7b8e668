package middleware

import (
	"errors"
	"strconv"

	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	internal_i18n "github.com/Xenn-00/arbeitszeit-meister/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware behandelt Fehler, die während der Anfrageverarbeitung auftreten.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, ok := c.Locals("lang").(string)
		if !ok || lang == "" {
			lang = c.Get("Accept-Language", "en")
		}

		var appErr *app_errors.AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
		case errors.As(err, &fiberErr):
			appErr = fromFiberError(fiberErr)
		default:
			appErr = app_errors.NewAppError(
				fiber.StatusInternalServerError,
				app_errors.ErrInternal,
				"internal_error",
				err,
			)
		}

		message := i18nSvc.T(lang, appErr.MessageKey, nil)

		reqID, _ := c.Locals("request_id").(string)

		respErr := fiber.Map{
			"code":       appErr.Code,
			"type":       appErr.Type,
			"message":    message,
			"request_id": reqID,
		}

		if appErr.Retryable {
			respErr["retryable"] = true
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(app_errors.RetryAfterSeconds))
		}

		if len(appErr.Details) > 0 {
			var details []fiber.Map

			for _, d := range appErr.Details {
				details = append(details, fiber.Map{
					"field":  d.Field,
					"reason": d.Reason,
					"message": i18nSvc.T(
						lang,
						d.MessageKey,
						d.Params,
					),
				})
			}

			respErr["details"] = details
		}

		if appErr.Err != nil {
			log.Error().Err(appErr.Err).Str("request_id", reqID).Str("type", appErr.Type).Msg("application error")
		}

		return c.Status(appErr.Code).JSON(fiber.Map{
			"status": "error",
			"error":  respErr,
		})
	}
}

func fromFiberError(e *fiber.Error) *app_errors.AppError {
	switch e.Code {
	case fiber.StatusNotFound:
		return app_errors.NewAppError(e.Code, app_errors.ErrNotFound, "not_found", nil)
	case fiber.StatusTooManyRequests:
		return app_errors.NewAppError(e.Code, "RATE_LIMITED", "rate_limited", nil)
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return app_errors.NewAppError(e.Code, app_errors.ErrInvalidBody, "request.invalid_body", nil)
	}
	return app_errors.NewAppError(e.Code, app_errors.ErrInternal, "internal_error", e)
}
