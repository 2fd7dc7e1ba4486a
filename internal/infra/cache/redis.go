// Package cache implements the cache-aside layer on Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"locator/config"
	"locator/internal/domain/lifecycle"
	"locator/internal/domain/repository"
	"locator/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client with fx lifecycle management.
func NewClient(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// redisCache implements repository.Cache on a Redis backend.
//
// Backend failures are swallowed and logged: a broken cache degrades every
// lookup to a miss and every write to a no-op, it never fails a request.
type redisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCache is the constructor for the Redis-backed cache.
func NewCache(client *redis.Client, logger *slog.Logger) repository.Cache {
	return &redisCache{
		client: client,
		logger: logger.With(slog.String("component", "redis_cache")),
	}
}

// Get returns the cached value for key, or ErrCacheMiss.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Cache read failed, treating as miss",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}

		return nil, repository.ErrCacheMiss
	}

	return value, nil
}

// Put stores value under key for ttl.
func (c *redisCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Cache write failed, skipping",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	return nil
}
