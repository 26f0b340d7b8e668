package middleware

import (
	"errors"
	"time"

	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware protokolliert eingehende Anfragen und deren Antworten.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		reqID, _ := c.Locals("request_id").(string)
		userID, _ := c.Locals("user_id").(string)

		// Der ErrorHandler setzt den Status erst nach dieser Middleware.
		status := c.Response().StatusCode()
		if code, ok := errorStatus(err); ok {
			status = code
		}

		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", reqID).
			Str("user_id", userID).
			Int("status", status).
			Dur("duration", duration).
			Msgf("%s %s", c.Method(), c.Path())

		return err
	}
}

func errorStatus(err error) (int, bool) {
	if err == nil {
		return 0, false
	}
	var appErr *app_errors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, true
	}
	return fiber.StatusInternalServerError, true
}
