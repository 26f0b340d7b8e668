package utils

import (
	"context"
	"errors"
	"time"

	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// GetCacheData liest einen JSON-Wert aus Redis und entpackt ihn in dest.
// Rückgabe: found == false bei Cache-Miss (kein Fehler), *app_errors.AppError bei Redis- oder JSON-Fehlern.
func GetCacheData(ctx context.Context, rdb *redis.Client, cacheKey string, dest any) (bool, *app_errors.AppError) {
	val, err := rdb.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil // Cache-miss
	} else if err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return true, nil
}

// SetCacheData serialisiert data als JSON und speichert es mit Ablaufzeit in Redis.
func SetCacheData(ctx context.Context, rdb *redis.Client, cacheKey string, data any, expire time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(data)
	if err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if err := rdb.Set(ctx, cacheKey, bytes, expire).Err(); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

// DeleteCacheData löscht cacheKey; ein fehlender Key ist kein Fehler.
func DeleteCacheData(ctx context.Context, rdb *redis.Client, cacheKey string) error {
	return rdb.Del(ctx, cacheKey).Err()
}
