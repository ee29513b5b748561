package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/carousel/internal/carousel"
)

// Config is the carousel's runtime configuration.
type Config struct {
	SlidesSource  string
	RefreshEvery  time.Duration // zero loads once
	RedisURL      string        // empty disables the cache
	CacheKey      string
	CacheTTL      time.Duration
	MobileMax     float64
	TabletMax     float64
	Autoplay      time.Duration
	CommitRatio   float64
	Transition    time.Duration
	MoveTolerance float64
	LogLevel      string
	LogPath       string
	FeedListen    string
}

const (
	defaultConfigPath   = "~/.config/carousel/config.toml"
	defaultSlidesSource = "~/.config/carousel/slides.yaml"
	defaultCacheKey     = "carousel:slides"
	defaultCacheTTL     = 5 * time.Minute
	defaultLogLevel     = "info"
	defaultLogPath      = "~/.local/state/carousel/carousel.log"
	defaultFeedListen   = "127.0.0.1:7490"

	// Terminal cells rather than CSS pixels.
	defaultMobileMax = 80
	defaultTabletMax = 140
)

type rawConfig struct {
	Slides struct {
		Source         string `toml:"source"`
		RefreshSeconds int    `toml:"refresh_seconds"`
	} `toml:"slides"`
	Cache struct {
		RedisURL   string `toml:"redis_url"`
		Key        string `toml:"key"`
		TTLSeconds *int   `toml:"ttl_seconds"`
	} `toml:"cache"`
	Carousel struct {
		MobileMax       float64  `toml:"mobile_max"`
		TabletMax       float64  `toml:"tablet_max"`
		AutoplaySeconds float64  `toml:"autoplay_seconds"`
		CommitRatio     float64  `toml:"commit_ratio"`
		TransitionMS    int      `toml:"transition_ms"`
		MoveTolerance   *float64 `toml:"move_tolerance"`
	} `toml:"carousel"`
	Log struct {
		Level string `toml:"level"`
		Path  string `toml:"path"`
	} `toml:"log"`
	Feed struct {
		Listen string `toml:"listen"`
	} `toml:"feed"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SlidesSource:  mustExpand(defaultSlidesSource),
		CacheKey:      defaultCacheKey,
		CacheTTL:      defaultCacheTTL,
		MobileMax:     defaultMobileMax,
		TabletMax:     defaultTabletMax,
		Autoplay:      carousel.DefaultAutoplayInterval,
		CommitRatio:   carousel.DefaultCommitRatio,
		Transition:    carousel.DefaultTransitionDuration,
		MoveTolerance: carousel.DefaultMoveTolerance,
		LogLevel:      defaultLogLevel,
		LogPath:       mustExpand(defaultLogPath),
		FeedListen:    defaultFeedListen,
	}
}

// Load reads the config at path (or the default path), falling back to
// defaults when the file is missing. Out-of-range values are replaced by
// their defaults rather than rejected.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if source := strings.TrimSpace(raw.Slides.Source); source != "" {
		cfg.SlidesSource = expandSource(source)
	}
	if raw.Slides.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.Slides.RefreshSeconds) * time.Second
	}

	cfg.RedisURL = strings.TrimSpace(raw.Cache.RedisURL)
	if key := strings.TrimSpace(raw.Cache.Key); key != "" {
		cfg.CacheKey = key
	}
	if raw.Cache.TTLSeconds != nil && *raw.Cache.TTLSeconds >= 0 {
		cfg.CacheTTL = time.Duration(*raw.Cache.TTLSeconds) * time.Second
	}

	c := raw.Carousel
	if validWidth(c.MobileMax) {
		cfg.MobileMax = c.MobileMax
	}
	if validWidth(c.TabletMax) {
		cfg.TabletMax = c.TabletMax
	}
	if cfg.TabletMax < cfg.MobileMax {
		cfg.TabletMax = cfg.MobileMax
	}
	if c.AutoplaySeconds > 0 {
		cfg.Autoplay = time.Duration(c.AutoplaySeconds * float64(time.Second))
	}
	if c.CommitRatio > 0 && c.CommitRatio < 1 {
		cfg.CommitRatio = c.CommitRatio
	}
	if c.TransitionMS > 0 {
		cfg.Transition = time.Duration(c.TransitionMS) * time.Millisecond
	}
	if c.MoveTolerance != nil && *c.MoveTolerance >= 0 {
		cfg.MoveTolerance = *c.MoveTolerance
	}

	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if logPath := strings.TrimSpace(raw.Log.Path); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if listen := strings.TrimSpace(raw.Feed.Listen); listen != "" {
		cfg.FeedListen = listen
	}

	return cfg, nil
}

// EngineOptions maps the config onto carousel engine options.
func (c Config) EngineOptions() carousel.Options {
	return carousel.Options{
		Breakpoints:        carousel.Breakpoints{MobileMax: c.MobileMax, TabletMax: c.TabletMax},
		AutoplayInterval:   c.Autoplay,
		CommitRatio:        c.CommitRatio,
		TransitionDuration: c.Transition,
		MoveTolerance:      c.MoveTolerance,
	}
}

// CacheEnabled reports whether slide lists should go through Redis.
func (c Config) CacheEnabled() bool {
	return strings.TrimSpace(c.RedisURL) != ""
}

func validWidth(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// expandSource leaves URLs alone and expands file paths.
func expandSource(source string) string {
	if strings.Contains(source, "://") {
		return source
	}
	return mustExpand(source)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
