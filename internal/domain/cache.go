package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache stores short-lived string values by key.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set with a zero ttl keeps the value until evicted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
