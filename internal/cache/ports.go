package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Cache is the port the slide loader caches through.
type Cache interface {
	// Get returns ErrNotFound (wrapped) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value; a zero ttl means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
