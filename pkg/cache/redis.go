package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisOpTimeout = 500 * time.Millisecond
	driverRedis    = "redis"
)

// RedisCache is a shared alternative to LRUCache for multi-instance deployments.
// Errors are logged and reported as misses.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(logger *slog.Logger, addr, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With(slog.String("cache", driverRedis)),
	}
}

func (c *RedisCache) key(key string) string {
	return c.prefix + ":" + key
}

func (c *RedisCache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		cacheLookups.WithLabelValues(driverRedis, "miss").Inc()
		return nil, false
	}
	if err != nil {
		cacheLookups.WithLabelValues(driverRedis, "error").Inc()
		c.logger.Warn("failed to get key", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	cacheLookups.WithLabelValues(driverRedis, "hit").Inc()
	return data, true
}

func (c *RedisCache) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := c.client.Set(ctx, c.key(key), value, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to set key", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *RedisCache) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		c.logger.Warn("failed to delete key", slog.String("key", key), slog.Any("error", err))
	}
}

// Start checks that redis is reachable.
func (c *RedisCache) Start(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
