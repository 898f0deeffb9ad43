package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"yippee/internal/domain"
)

const catalogKey = "catalog:restaurants"

// RedisCache is a read-through cache for the restaurant catalog. The catalog
// is small and read-only, so a single JSON blob under one key is enough.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetCatalog(ctx context.Context) ([]domain.Restaurant, bool) {
	raw, err := c.Client.Get(ctx, catalogKey).Result()
	if err != nil {
		return nil, false
	}
	var restaurants []domain.Restaurant
	if err := json.Unmarshal([]byte(raw), &restaurants); err != nil {
		return nil, false
	}
	return restaurants, true
}

func (c *RedisCache) SetCatalog(ctx context.Context, restaurants []domain.Restaurant) error {
	payload, err := json.Marshal(restaurants)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey, payload, c.TTL).Err()
}
