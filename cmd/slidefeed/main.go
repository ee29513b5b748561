package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/five82/carousel/internal/cache"
	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/feed"
	"github.com/five82/carousel/internal/logger"
	"github.com/five82/carousel/internal/slides"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override carousel config path (optional)")
	source := flag.String("slides", "", "slide file to serve (optional, defaults to [slides] source)")
	listen := flag.String("listen", "", "listen address (optional, defaults to [feed] listen)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slidefeed: load config: %v\n", err)
		return 1
	}
	if s := strings.TrimSpace(*source); s != "" {
		cfg.SlidesSource = s
	}
	if l := strings.TrimSpace(*listen); l != "" {
		cfg.FeedListen = l
	}

	if err := logger.Init("production", cfg.LogLevel, ""); err != nil {
		fmt.Fprintf(os.Stderr, "slidefeed: init logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if strings.Contains(cfg.SlidesSource, "://") {
		logger.Get().Error("slidefeed serves local files only", zap.String("source", cfg.SlidesSource))
		return 1
	}

	var loader slides.Loader = &slides.FileLoader{Path: cfg.SlidesSource}
	if cfg.CacheEnabled() {
		adapter, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			logger.Get().Warn("redis cache disabled", zap.Error(err))
		} else {
			defer func() { _ = adapter.Close() }()
			loader = slides.NewCachedLoader(loader, adapter, cfg.CacheKey, cfg.CacheTTL)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := feed.New(cfg.FeedListen, loader)
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			logger.Get().Warn("shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		logger.Get().Error("slide feed stopped", zap.Error(err))
		return 1
	}
	return 0
}
