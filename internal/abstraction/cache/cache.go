package cache

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
)

// Cache speichert JSON-Werte mit Ablaufzeit. Ein Cache-Miss ist kein Fehler (found == false).
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, key string) error
	// Generation liest einen Zähler; ein fehlender Schlüssel ergibt 0.
	Generation(ctx context.Context, key string) (int64, error)
	Bump(ctx context.Context, key string) (int64, error)
}

// TaskGenerationKey wird bei jeder Schreiboperation auf Aufgaben erhöht und ist Teil aller Aufgaben-Cache-Keys.
const TaskGenerationKey = "tasks:generation"
