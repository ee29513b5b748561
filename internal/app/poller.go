package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/carousel/internal/logger"
	"github.com/five82/carousel/internal/slides"
	"github.com/five82/carousel/internal/state"
)

const loadTimeout = 10 * time.Second

// StartPoller launches a background goroutine that reloads the slide list at
// a fixed cadence. It returns immediately. A non-positive interval disables
// polling.
func StartPoller(ctx context.Context, store *state.Store, loader slides.Loader, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh(ctx, store, loader)
			}
		}
	}()
}

// refresh loads once and records the outcome. Failures keep the previous
// list in the store.
func refresh(ctx context.Context, store *state.Store, loader slides.Loader) {
	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	items, err := loader.Load(loadCtx)
	if err != nil {
		store.Update(nil, err)
		logger.Get().Warn("slide load failed", zap.Error(err))
		return
	}
	store.Update(items, nil)
	logger.Get().Debug("slides loaded", zap.Int("count", len(items)))
}
