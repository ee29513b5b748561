// Package app is the composition root of the carousel viewer.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         Read ~/.config/carousel/config.toml
//	       ├─────> logger.Init()         zap, to the log file
//	       ├─────> slides.NewLoader()    file or feed
//	       ├─────> slides.CachedLoader   only when [cache] redis_url is set
//	       ├─────> state.Store{}         shared slide list
//	       ├─────> StartPoller()         optional periodic reload
//	       └─────> ui.Run()              Bubble Tea (blocks)
//
// # Failure Handling
//
// Config and logger errors are fatal. Loader failures are logged and leave
// the previous slide list in place; on the very first load they give the
// carousel an empty list. A Redis cache that cannot be reached is skipped
// with a warning.
package app
