// Package config loads the carousel's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/carousel/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Missing, empty or out-of-range fields fall back to their defaults
//
// # TOML Format
//
//	[slides]
//	source = "~/.config/carousel/slides.yaml"  # or http://host:port
//	refresh_seconds = 0                         # 0 loads once
//
//	[cache]
//	redis_url = ""                              # empty disables caching
//	key = "carousel:slides"
//	ttl_seconds = 300
//
//	[carousel]
//	mobile_max = 80                             # terminal columns
//	tablet_max = 140
//	autoplay_seconds = 7
//	commit_ratio = 0.15
//	transition_ms = 300
//	move_tolerance = 5
//
//	[log]
//	level = "info"
//	path = "~/.local/state/carousel/carousel.log"
//
//	[feed]
//	listen = "127.0.0.1:7490"
//
// Tilde expansion applies to the config path, the slide source (unless it is
// a URL) and the log path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
//
// Config.EngineOptions converts the [carousel] section into carousel.Options.
package config
