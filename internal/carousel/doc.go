// Package carousel implements a headless infinite banner carousel.
//
// # Overview
//
// The engine presents an ordered list of slides, one slide per container
// width, with drag and touch navigation, wraparound in both directions, a
// resettable autoplay timer and per-device image selection. It knows nothing
// about pixels on a screen, DOM nodes or terminal cells: a host feeds it
// events and paints the Frame it returns.
//
// # Pipeline
//
//	Resize ──> Breakpoints.Classify ──> Project ──> BuildTrack
//	                                                   │
//	PointerDown/Move/Up ─┐                             ▼
//	AutoplayTick ────────┼──> intent ──> apply ──> index + offset
//	Navigate ────────────┘                 │
//	                                       └──> ArmSettle ──> SettleTick ──> teleport
//
// # Track layout
//
// For two or more slides the physical strip is
//
//	[clone(last), slide 0, ..., slide N-1, clone(first)]
//
// so logical slide i sits in slot i+1 and its canonical offset is
// -(i+1)*slotWidth. Moving past either end animates into the clone slot and,
// once TransitionDuration has elapsed, snaps to the identical real slot with
// the transition disabled for one paint. Zero or one slide is rendered as-is.
//
// # Timers
//
// The engine never starts goroutines or timers. ArmAutoplay and ArmSettle
// effects carry a generation number; the host delivers the matching tick
// event after the requested delay. Any reset bumps the generation so a late
// tick from a cancelled timer is ignored. The host can therefore implement a
// timer as a fire-and-forget one-shot (tea.Tick, time.AfterFunc, setTimeout).
//
// # Render modes
//
// Frame.Mode is one of ModeIdle, ModeAnimated or ModeInstant. ModeInstant is
// set after a teleport, a resize or a new slide list; the host paints that
// frame without a transition and dispatches Painted, which moves the mode
// back to ModeIdle. Frame.TransitionEnabled folds the mode and the drag
// state into the single flag most hosts need.
//
// # Usage
//
//	e := carousel.New(carousel.DefaultOptions())
//	e.Dispatch(carousel.Resize{ViewportWidth: 1280, ContainerWidth: 1200})
//	for _, eff := range e.Dispatch(carousel.SlidesLoaded{Slides: slides}) {
//		schedule(eff)
//	}
//	paint(e.Frame())
//	e.Dispatch(carousel.Painted{})
//
// Each Engine owns its state; any number of carousels can run side by side.
package carousel
