package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a redis-backed domain.Cache. Values are stored as plain strings;
// a mapping is just (id, full URL), so there is nothing to marshal.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger,
	}
}

func (c *Cache) Get(ctx context.Context, id string) (string, error) {
	val, err := c.client.Get(ctx, buildKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		c.logger.Error("Failed to get from cache", "id", id, "error", err)
		return "", fmt.Errorf("cache get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) Set(ctx context.Context, id, fullURL string, ttl time.Duration) error {
	if err := c.client.Set(ctx, buildKey(id), fullURL, ttl).Err(); err != nil {
		c.logger.Error("Failed to set cache", "id", id, "error", err)
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, buildKey(id)).Err(); err != nil {
		c.logger.Error("Failed to delete from cache", "id", id, "error", err)
		return fmt.Errorf("cache delete failed: %w", err)
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func buildKey(id string) string {
	return "mapping:" + id
}
