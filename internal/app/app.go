package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/carousel/internal/cache"
	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/logger"
	"github.com/five82/carousel/internal/prefs"
	"github.com/five82/carousel/internal/slides"
	"github.com/five82/carousel/internal/state"
	"github.com/five82/carousel/internal/ui"
)

// Options configure the carousel application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses default ~/.config/carousel/prefs.toml
	PollEvery    int    // seconds; overrides [slides] refresh_seconds when positive
	SlidesSource string // overrides [slides] source when set
}

// Run boots the carousel TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if source := strings.TrimSpace(opts.SlidesSource); source != "" {
		cfg.SlidesSource = source
	}
	if opts.PollEvery > 0 {
		cfg.RefreshEvery = time.Duration(opts.PollEvery) * time.Second
	}

	if err := logger.Init("production", cfg.LogLevel, cfg.LogPath); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	loader, closeLoader, err := buildLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLoader()

	store := &state.Store{}

	// Initial load races the UI so the spinner is visible on slow feeds.
	go refresh(ctx, store, loader)
	StartPoller(ctx, store, loader, cfg.RefreshEvery)

	logger.Get().Info("carousel starting",
		zap.String("source", cfg.SlidesSource),
		zap.Duration("refresh", cfg.RefreshEvery),
		zap.Bool("cache", cfg.CacheEnabled()),
	)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Engine:    cfg.EngineOptions(),
		Reload:    func() { reload(ctx, store, loader) },
		ThemeName: userPrefs.Theme,
		Captions:  userPrefs.Captions,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath,
	})
}

// buildLoader wraps the configured source in a Redis cache when one is
// configured and reachable. An unreachable Redis only costs the cache.
func buildLoader(ctx context.Context, cfg config.Config) (slides.Loader, func(), error) {
	base, err := slides.NewLoader(cfg.SlidesSource)
	if err != nil {
		return nil, nil, fmt.Errorf("init slide loader: %w", err)
	}
	if !cfg.CacheEnabled() {
		return base, func() {}, nil
	}

	adapter, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		logger.Get().Warn("redis cache disabled", zap.Error(err))
		return base, func() {}, nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := adapter.Ping(pingCtx); err != nil {
		logger.Get().Warn("redis unreachable, cache disabled", zap.Error(err))
		_ = adapter.Close()
		return base, func() {}, nil
	}

	cached := slides.NewCachedLoader(base, adapter, cfg.CacheKey, cfg.CacheTTL)
	return cached, func() { _ = adapter.Close() }, nil
}

// reload drops any cached list and loads fresh in the background.
func reload(ctx context.Context, store *state.Store, loader slides.Loader) {
	go func() {
		if cached, ok := loader.(*slides.CachedLoader); ok {
			if err := cached.Invalidate(ctx); err != nil {
				logger.Get().Warn("cache invalidate failed", zap.Error(err))
			}
		}
		refresh(ctx, store, loader)
	}()
}
