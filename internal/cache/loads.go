package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/loads-service/internal/domain"
)

const (
	listKey   = "loads:all"
	entryTTL  = 30 * time.Second
	keyPrefix = "loads:"
)

// LoadCache is a read-through Redis cache for load queries. A nil cache or
// nil client behaves as a permanent miss, so the service works uncached.
type LoadCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewLoadCache builds the cache around an optional Redis client.
func NewLoadCache(client *redis.Client, logger *zap.Logger) *LoadCache {
	return &LoadCache{client: client, logger: logger}
}

// GetList returns the cached collection listing, if warm.
func (c *LoadCache) GetList(ctx context.Context) ([]domain.Load, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, false
	}
	var loads []domain.Load
	if err := json.Unmarshal(raw, &loads); err != nil {
		c.logger.Warn("discarding unreadable cached list", zap.Error(err))
		return nil, false
	}
	return loads, true
}

// SetList stores the collection listing.
func (c *LoadCache) SetList(ctx context.Context, loads []domain.Load) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(loads)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listKey, raw, entryTTL).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", listKey), zap.Error(err))
	}
}

// GetByID returns a cached single load, if warm.
func (c *LoadCache) GetByID(ctx context.Context, id string) (*domain.Load, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var load domain.Load
	if err := json.Unmarshal(raw, &load); err != nil {
		return nil, false
	}
	return &load, true
}

// SetByID stores a single load.
func (c *LoadCache) SetByID(ctx context.Context, id string, load *domain.Load) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(load)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+id, raw, entryTTL).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", keyPrefix+id), zap.Error(err))
	}
}

// Invalidate drops the listing and, when id is non-empty, the single entry.
// Called after every mutation.
func (c *LoadCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.client == nil {
		return
	}
	keys := []string{listKey}
	if id != "" {
		keys = append(keys, keyPrefix+id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
