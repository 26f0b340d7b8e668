package use_cases

import (
	"context"
	"time"

	"github.com/Xenn-00/arbeitszeit-meister/internal/abstraction/cache"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
)

var _ cache.Cache = (*MockCache)(nil)

// MockCache: nicht gesetzte Fn-Felder verhalten sich wie ein leerer Cache.
type MockCache struct {
	GetFn        func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	SetFn        func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError
	DelFn        func(ctx context.Context, key string) error
	GenerationFn func(ctx context.Context, key string) (int64, error)
	BumpFn       func(ctx context.Context, key string) (int64, error)

	GetCalled        int
	SetCalled        int
	DelCalled        int
	GenerationCalled int
	BumpCalled       int
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	m.GetCalled++
	if m.GetFn == nil {
		return false, nil
	}
	return m.GetFn(ctx, key, dest)
}

func (m *MockCache) Set(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
	m.SetCalled++
	if m.SetFn == nil {
		return nil
	}
	return m.SetFn(ctx, key, val, ttl)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	m.DelCalled++
	if m.DelFn == nil {
		return nil
	}
	return m.DelFn(ctx, key)
}

func (m *MockCache) Generation(ctx context.Context, key string) (int64, error) {
	m.GenerationCalled++
	if m.GenerationFn == nil {
		return 0, nil
	}
	return m.GenerationFn(ctx, key)
}

func (m *MockCache) Bump(ctx context.Context, key string) (int64, error) {
	m.BumpCalled++
	if m.BumpFn == nil {
		return 1, nil
	}
	return m.BumpFn(ctx, key)
}
