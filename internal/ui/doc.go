// Package ui plays the carousel in a terminal with Bubble Tea.
//
// # Overview
//
// The Model owns one carousel.Engine and translates between terminal
// messages and engine events. It never decides where the carousel is; it
// only paints Frame and schedules the timers the engine asks for.
//
//	tea.WindowSizeMsg  ──> Resize (one column is one pixel)
//	tea.MouseMsg       ──> PointerDown / PointerMove / PointerUp + Click
//	                       (press on the dot row ──> Navigate GoTo)
//	tea.BlurMsg        ──> PointerLeave
//	←/h →/l 1-9        ──> Navigate
//	snapshotMsg        ──> SlidesLoaded, when the store version changes
//
//	ArmAutoplay ──> tea.Tick ──> autoplayMsg ──> AutoplayTick
//	ArmSettle   ──> tea.Tick ──> settleMsg   ──> SettleTick
//	FollowLink  ──> footer status + log line
//
// # Screen Layout
//
//	row 0        header: slide n/N, device class, feed health
//	rows 1..H    track, framePadding columns of gutter on each side
//	row H+1      dots
//	row H+2      autoplay countdown (bubbles/progress)
//	row H+3      footer: status or short help
//
// # Animation
//
// The painted offset chases the engine offset with a critically damped
// harmonica spring tuned to settle within the engine's transition duration.
// Drags and ModeInstant frames snap. After an instant frame the model
// reports Painted one frame later, which re-enables transitions.
//
// The track is drawn by cutting a container-wide window out of the strip of
// slot-wide slide blocks, so a clone slot renders identically to the slide it
// copies.
//
// # Key Bindings
//
//   - ←/h, →/l: previous / next slide
//   - 1-9: go to slide
//   - r: reload slides, c: toggle captions, T: cycle theme
//   - ?: help, q/ctrl+c: quit
package ui
