package prices

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisCache implements Cache on Redis with per-key TTL eviction.
type RedisCache struct {
	client *goredis.Client
	prefix string
}

func NewRedisCache(client *goredis.Client) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: "price:",
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("redis price get: %w", err)
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis price set: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis price invalidate: %w", err)
	}
	return nil
}
