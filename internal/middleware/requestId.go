package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDPrefix = "AZM-"
	// Längere IDs vom Client werden verworfen, sie landen sonst ungekürzt im Log.
	maxClientRequestID = 64
)

// RequestIDMiddleware übernimmt eine gültige X-Request-ID des Clients oder erzeugt eine neue mit Präfix "AZM-".
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(requestIDHeader)
		if !validClientRequestID(requestID) {
			id, err := gonanoid.New()
			if err != nil {
				return fmt.Errorf("Fehler beim Generieren der Anforderungs-ID: %w", err)
			}
			requestID = requestIDPrefix + id
		}

		c.Locals("request_id", requestID)
		c.Set(requestIDHeader, requestID)

		return c.Next()
	}
}

// validClientRequestID erlaubt nur druckbare ASCII-Zeichen ohne Leerzeichen.
func validClientRequestID(id string) bool {
	if id == "" || len(id) > maxClientRequestID {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
