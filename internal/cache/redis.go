package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doc-quiz/internal/config"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Options turns the redis config into client options. Address is either
// host:port or a redis:// / rediss:// URL; password and db from the config
// override the URL's when set.
func Options(redisCfg config.RedisConfig) (*redis.Options, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis address is empty")
	}
	if !strings.Contains(redisCfg.Address, "://") {
		return &redis.Options{
			Addr:     redisCfg.Address,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		}, nil
	}

	opts, err := redis.ParseURL(redisCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if redisCfg.Password != "" {
		opts.Password = redisCfg.Password
	}
	if redisCfg.DB != 0 {
		opts.DB = redisCfg.DB
	}
	return opts, nil
}

// NewRedisClient connects and pings. Callers treat an empty address as
// caching disabled and do not call this.
func NewRedisClient(ctx context.Context, redisCfg config.RedisConfig) (*redis.Client, error) {
	opts, err := Options(redisCfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}
