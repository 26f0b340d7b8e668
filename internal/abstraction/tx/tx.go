package tx

import (
	"context"

	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
)

// Tx ist eine offene Transaktion. Rollback nach Commit ist ein No-op,
// daher darf es immer per defer aufgerufen werden.
type Tx interface {
	Commit(ctx context.Context) *app_errors.AppError
	Rollback(ctx context.Context) *app_errors.AppError
}

// TxManager öffnet Transaktionen; Repos holen sich die pgx-Transaktion über Unwrap.
type TxManager interface {
	Begin(ctx context.Context) (Tx, *app_errors.AppError)
}
