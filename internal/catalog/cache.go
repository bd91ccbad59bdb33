package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"unibridge.app/compass/internal/model"
)

const cacheKey = "compass:catalog:active"

// cacheClient is the slice of redis.Client the catalog cache uses.
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedSource wraps a Source with a short-TTL Redis cache. It fails
// open: any Redis error falls through to the underlying source, so the
// cache can never make the catalog unavailable.
type CachedSource struct {
	inner Source
	rdb   cacheClient
	ttl   time.Duration
}

func NewCachedSource(inner Source, rdb cacheClient, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedSource{inner: inner, rdb: rdb, ttl: ttl}
}

func (s *CachedSource) Active(ctx context.Context) ([]model.Opportunity, error) {
	if data, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var cached []model.Opportunity
		if err := json.Unmarshal(data, &cached); err == nil {
			slog.DebugContext(ctx, "catalog cache hit", "count", len(cached))
			return cached, nil
		}
		slog.WarnContext(ctx, "catalog cache entry corrupt, refetching")
	}

	opportunities, err := s.inner.Active(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(opportunities); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, data, s.ttl).Err(); err != nil {
			slog.WarnContext(ctx, "catalog cache write failed", "error", err)
		}
	}

	return opportunities, nil
}
