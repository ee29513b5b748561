package carousel

import "time"

// Event is an input to Engine.Dispatch.
type Event interface {
	event()
}

// PointerKind distinguishes mouse from touch gestures.
type PointerKind int

const (
	Mouse PointerKind = iota
	Touch
)

// Resize reports new viewport and container widths.
type Resize struct {
	ViewportWidth  float64
	ContainerWidth float64
}

// SlidesLoaded replaces the slide list wholesale. A non-nil Err is treated
// as an empty list.
type SlidesLoaded struct {
	Slides []SlideSource
	Err    error
}

// PointerDown starts a gesture (mouse-down or touch-start).
type PointerDown struct {
	X    float64
	Kind PointerKind
}

// PointerMove reports the pointer position during a gesture.
type PointerMove struct {
	X float64
}

// PointerUp ends a gesture (mouse-up or touch-end).
type PointerUp struct{}

// PointerLeave ends a gesture because the pointer left the carousel.
type PointerLeave struct{}

// Click activates the current slide.
type Click struct{}

// Navigate is a programmatic navigation request, e.g. from a dot indicator.
type Navigate struct {
	Intent Intent
	Index  int // used with GoTo
}

// AutoplayTick is delivered by the host when an ArmAutoplay timer fires.
type AutoplayTick struct {
	Gen uint64
}

// SettleTick is delivered by the host when an ArmSettle timer fires.
type SettleTick struct {
	Gen uint64
}

// Painted tells the engine the current frame reached the screen.
type Painted struct{}

func (Resize) event()       {}
func (SlidesLoaded) event() {}
func (PointerDown) event()  {}
func (PointerMove) event()  {}
func (PointerUp) event()    {}
func (PointerLeave) event() {}
func (Click) event()        {}
func (Navigate) event()     {}
func (AutoplayTick) event() {}
func (SettleTick) event()   {}
func (Painted) event()      {}

// Effect is a side effect the host must carry out after a Dispatch.
type Effect interface {
	effect()
}

// ArmAutoplay asks the host to deliver AutoplayTick{Gen} after the delay.
// Ticks from an older generation are ignored, so the host never has to
// cancel a timer.
type ArmAutoplay struct {
	Gen   uint64
	After time.Duration
}

// ArmSettle asks the host to deliver SettleTick{Gen} once the animation into
// a clone slot has finished.
type ArmSettle struct {
	Gen   uint64
	After time.Duration
}

// FollowLink asks the host to open a slide link.
type FollowLink struct {
	URL string
}

func (ArmAutoplay) effect() {}
func (ArmSettle) effect()   {}
func (FollowLink) effect()  {}

// Intent is a resolved navigation request.
type Intent int

const (
	Stay Intent = iota
	Previous
	Next
	GoTo
)

func (i Intent) String() string {
	switch i {
	case Previous:
		return "previous"
	case Next:
		return "next"
	case GoTo:
		return "goto"
	default:
		return "stay"
	}
}

// RenderMode tells the host how to move the track on the next paint.
type RenderMode int

const (
	// ModeIdle: at rest; transitions enabled for the next move.
	ModeIdle RenderMode = iota
	// ModeAnimated: the offset just changed and should be animated.
	ModeAnimated
	// ModeInstant: the offset jumped and must be painted once without a
	// transition. Painted moves it back to ModeIdle.
	ModeInstant
)

func (m RenderMode) String() string {
	switch m {
	case ModeAnimated:
		return "animated"
	case ModeInstant:
		return "instant"
	default:
		return "idle"
	}
}
