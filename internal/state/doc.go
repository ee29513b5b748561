// Package state holds the most recently loaded slide list.
//
// # Overview
//
// The loader goroutine (internal/app) writes, the Bubble Tea model reads:
//
//	Loader goroutine:              UI:
//	┌────────────────┐            ┌──────────────────┐
//	│ loader.Load()  │            │ tick             │
//	│      ↓         │            │      ↓           │
//	│ store.Update() │───────────→│ store.Snapshot() │
//	└────────────────┘  (mutex)   │      ↓           │
//	                              │ Version changed? │
//	                              │  → SlidesLoaded  │
//	                              └──────────────────┘
//
// # Update Semantics
//
// A successful Update replaces the list wholesale and bumps Version; there is
// no partial merge. A failed Update keeps the previous list and records the
// error, except on the very first load, where it still bumps Version so the
// UI can leave its loading placeholder and show the empty carousel.
//
// # Copies
//
// Update and Snapshot both copy the slide slice, so the engine can never
// observe a list that the loader is still writing.
//
// The zero Store is ready to use.
package state
