package slides

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/carousel/internal/cache"
	"github.com/five82/carousel/internal/carousel"
	"github.com/five82/carousel/internal/logger"
)

// DefaultCacheKey is the Redis key slide lists are stored under.
const DefaultCacheKey = "carousel:slides"

// CachedLoader is a read-through cache in front of another Loader. Cache
// failures are logged and never fail a load.
type CachedLoader struct {
	inner Loader
	cache cache.Cache
	key   string
	ttl   time.Duration
}

var _ Loader = (*CachedLoader)(nil)

// NewCachedLoader wraps inner. An empty key uses DefaultCacheKey; a zero ttl
// caches without expiry.
func NewCachedLoader(inner Loader, c cache.Cache, key string, ttl time.Duration) *CachedLoader {
	if key == "" {
		key = DefaultCacheKey
	}
	return &CachedLoader{inner: inner, cache: c, key: key, ttl: ttl}
}

func (l *CachedLoader) Load(ctx context.Context) ([]carousel.SlideSource, error) {
	log := logger.Get()

	data, err := l.cache.Get(ctx, l.key)
	switch {
	case err == nil:
		var cached []carousel.SlideSource
		jsonErr := json.Unmarshal(data, &cached)
		if jsonErr == nil {
			log.Debug("slides served from cache", zap.String("key", l.key), zap.Int("count", len(cached)))
			return cached, nil
		}
		log.Warn("discarding corrupt cached slides", zap.String("key", l.key), zap.Error(jsonErr))
	case errors.Is(err, cache.ErrNotFound):
	default:
		log.Warn("slide cache unavailable", zap.String("key", l.key), zap.Error(err))
	}

	fresh, err := l.inner.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load slides: %w", err)
	}

	encoded, err := json.Marshal(fresh)
	if err != nil {
		return fresh, nil
	}
	if err := l.cache.Set(ctx, l.key, encoded, l.ttl); err != nil {
		log.Warn("failed to cache slides", zap.String("key", l.key), zap.Error(err))
	}
	return fresh, nil
}

// Invalidate drops the cached list so the next Load goes to the source.
func (l *CachedLoader) Invalidate(ctx context.Context) error {
	if err := l.cache.Delete(ctx, l.key); err != nil {
		return fmt.Errorf("invalidate slides: %w", err)
	}
	return nil
}
