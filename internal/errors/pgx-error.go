package app_errors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPgxError übersetzt Datenbankfehler. notFoundKey wird für pgx.ErrNoRows verwendet.
func MapPgxError(err error, notFoundKey string) *AppError {
	if errors.Is(err, pgx.ErrNoRows) {
		return NewAppError(404, ErrNotFound, notFoundKey, nil)
	}

	// Abgebrochene oder abgelaufene Anfragen sind kein Datenbankfehler.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewUnavailableError("report.upstream_unavailable", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return NewAppError(409, ErrConflict, "conflict", err)
		case "23503": // foreign_key_violation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		case "23514": // check_violation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return NewUnavailableError("report.upstream_unavailable", err)
	}

	return NewAppError(500, ErrInternal, "internal_error", err)
}
