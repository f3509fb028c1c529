package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized ledgers by key. A zero ttl keeps the
// value until evicted by the backend.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
