package app_errors

import "fmt"

// AppError repräsentiert einen Anwendungsfehler mit HTTP-Code, Typ, i18n-Schlüssel und optionalen Feldfehlern.
type AppError struct {
	Code       int          // HTTP status code
	Type       string       // VALIDATION_ERROR, NOT_FOUND, usw
	MessageKey string       // i18n key
	Details    []FieldError // optional (validation)
	Err        error        // original error (internal only)
	Retryable  bool         // Client darf die Anfrage später wiederholen
}

const (
	ErrValidation   = "VALIDATION_ERROR"
	ErrInvalidBody  = "INVALID_BODY"
	ErrInvalidParam = "INVALID_PARAM"
	ErrInvalidQuery = "INVALID_QUERY"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN"
	ErrNotFound     = "NOT_FOUND"
	ErrConflict     = "CONFLICT"
	ErrUnavailable  = "UPSTREAM_UNAVAILABLE"
	ErrInternal     = "INTERNAL_ERROR"
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Details:    details,
	}
}

// RetryAfterSeconds wird bei wiederholbaren Fehlern als Retry-After gesendet.
const RetryAfterSeconds = 5

// NewUnavailableError kennzeichnet einen vorübergehenden Fehler eines vorgelagerten Dienstes.
func NewUnavailableError(messageKey string, err error) *AppError {
	return &AppError{
		Code:       503,
		Type:       ErrUnavailable,
		MessageKey: messageKey,
		Err:        err,
		Retryable:  true,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.MessageKey, e.Err)
	}
	return e.MessageKey
}

func (e *AppError) Unwrap() error {
	return e.Err
}
