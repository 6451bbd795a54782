package repository

import (
	"context"
	"time"
)

// CacheRepository stores short-lived string values. Get reports a miss with
// ok == false; an error means the backend itself failed.
type CacheRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
