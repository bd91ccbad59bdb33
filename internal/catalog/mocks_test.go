package catalog_test

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"unibridge.app/compass/internal/catalog"
	"unibridge.app/compass/internal/model"
)

type mockSource struct {
	activeFn func(ctx context.Context) ([]model.Opportunity, error)
	calls    int
}

func (m *mockSource) Active(ctx context.Context) ([]model.Opportunity, error) {
	m.calls++
	if m.activeFn != nil {
		return m.activeFn(ctx)
	}
	return nil, nil
}

var _ catalog.Source = (*mockSource)(nil)

// mockCache answers the two Redis commands the catalog cache issues.
// Command results are built with the go-redis result constructors, the
// same values a real client would return.
type mockCache struct {
	getFn func(ctx context.Context, key string) *redis.StringCmd
	setFn func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

func (m *mockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *mockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, expiration)
	}
	return redis.NewStatusResult("OK", nil)
}
