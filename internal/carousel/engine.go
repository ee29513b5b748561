package carousel

import "strings"

// State is a copy of the engine's mutable record.
type State struct {
	CurrentIndex int
	PixelOffset  float64
	Dragging     bool
	Mode         RenderMode
	MidTeleport  bool
}

// Dot is one navigation indicator.
type Dot struct {
	Index  int
	Active bool
}

// Frame is everything a host needs to paint the carousel.
type Frame struct {
	Loading           bool
	Ready             bool
	Class             DeviceClass
	Track             []TrackSlot
	Offset            float64
	SlotWidth         float64
	TransitionEnabled bool
	Mode              RenderMode
	Index             int
	Dots              []Dot
	Dragging          bool
	MidTeleport       bool
}

// Engine is a single carousel instance. It is not safe for concurrent use;
// hosts drive it from their event loop.
type Engine struct {
	opts Options

	class     DeviceClass
	loaded    bool
	sources   []SlideSource
	slides    []DisplaySlide
	track     []TrackSlot
	slotWidth float64

	index  int
	offset float64
	mode   RenderMode

	drag  drag
	moved bool // most recent gesture exceeded MoveTolerance or changed slide

	midTeleport bool
	excursion   int // physical slot of the clone being animated into
	settleTo    int
	settleGen   uint64

	autoplayGen uint64
}

// New creates an engine. Until the first Resize the container is treated as
// zero width, and until SlidesLoaded the frame reports Loading.
func New(opts Options) *Engine {
	return &Engine{
		opts:  opts.normalized(),
		class: Desktop,
	}
}

// Options returns the normalized options in use.
func (e *Engine) Options() Options {
	return e.opts
}

// Len returns the number of logical slides.
func (e *Engine) Len() int {
	return len(e.slides)
}

// Dispatch performs one synchronous transition and returns the effects the
// host must schedule.
func (e *Engine) Dispatch(ev Event) []Effect {
	switch ev := ev.(type) {
	case Resize:
		e.resize(ev)
		return nil
	case SlidesLoaded:
		return e.load(ev)
	case PointerDown:
		e.startDrag(ev)
		return nil
	case PointerMove:
		e.moveDrag(ev)
		return nil
	case PointerUp, PointerLeave:
		return e.releaseDrag()
	case Click:
		return e.click()
	case Navigate:
		return e.navigate(ev)
	case AutoplayTick:
		return e.autoplayTick(ev)
	case SettleTick:
		e.settle(ev)
		return nil
	case Painted:
		if e.mode == ModeInstant {
			e.mode = ModeIdle
		}
		return nil
	}
	return nil
}

// State returns a copy of the current state record.
func (e *Engine) State() State {
	return State{
		CurrentIndex: e.index,
		PixelOffset:  e.offset,
		Dragging:     e.drag.active,
		Mode:         e.mode,
		MidTeleport:  e.midTeleport,
	}
}

// Frame returns the render surface for the current state.
func (e *Engine) Frame() Frame {
	f := Frame{
		Loading:           !e.loaded,
		Ready:             e.ready(),
		Class:             e.class,
		Offset:            e.offset,
		SlotWidth:         e.slotWidth,
		TransitionEnabled: !e.drag.active && e.mode != ModeInstant,
		Mode:              e.mode,
		Index:             e.index,
		Dragging:          e.drag.active,
		MidTeleport:       e.midTeleport,
	}
	if len(e.track) > 0 {
		f.Track = make([]TrackSlot, len(e.track))
		copy(f.Track, e.track)
	}
	if n := len(e.slides); n >= 2 {
		active := e.index
		if e.midTeleport {
			active = e.settleTo
		}
		f.Dots = make([]Dot, n)
		for i := range f.Dots {
			f.Dots[i] = Dot{Index: i, Active: i == active}
		}
	}
	return f
}

func (e *Engine) ready() bool {
	return e.slotWidth > 0
}

func (e *Engine) canLoop() bool {
	return len(e.slides) >= 2
}

func (e *Engine) canonical() float64 {
	return CanonicalOffset(e.index, len(e.slides), e.slotWidth)
}

// restingOffset is where the track sits when no drag is displacing it.
func (e *Engine) restingOffset() float64 {
	if e.midTeleport {
		return slotOffset(e.excursion, e.slotWidth)
	}
	return e.canonical()
}

func (e *Engine) resize(ev Resize) {
	if class := e.opts.Breakpoints.Classify(ev.ViewportWidth); class != e.class {
		e.class = class
		e.reproject()
	}
	width := ev.ContainerWidth
	if !positive(width) {
		width = 0
	}
	e.slotWidth = width
	e.offset = e.restingOffset()
	if e.drag.active {
		e.offset += e.drag.delta
	}
	e.mode = ModeInstant
}

func (e *Engine) reproject() {
	e.slides = Project(e.sources, e.class)
	e.track = BuildTrack(e.slides)
}

// load replaces the slide list. A pending teleport is resolved first and an
// active drag survives the swap. Autoplay is only re-armed when the slide
// count changes, so a poll that returns the same list leaves the timer alone.
func (e *Engine) load(ev SlidesLoaded) []Effect {
	src := ev.Slides
	if ev.Err != nil {
		src = nil
	}
	wasLoaded, prevLen := e.loaded, len(e.slides)
	settled := e.midTeleport
	if settled {
		e.midTeleport = false
		e.index = e.settleTo
		e.settleGen++
	}

	e.sources = cloneSources(src)
	e.loaded = true
	e.reproject()

	n := len(e.slides)
	e.index = clampIndex(e.index, n)
	e.offset = e.canonical()
	if e.drag.active {
		if n == 0 {
			e.drag = drag{}
			e.moved = false
		} else {
			e.offset += e.drag.delta
		}
	}

	changed := !wasLoaded || n != prevLen
	if changed || settled {
		e.mode = ModeInstant
	}
	if !changed {
		return nil
	}
	if e.drag.active {
		e.stopAutoplay()
		return nil
	}
	return e.resetAutoplay()
}

func (e *Engine) click() []Effect {
	moved := e.moved
	e.moved = false
	if moved || e.drag.active || e.midTeleport || e.index >= len(e.slides) {
		return nil
	}
	slide := e.slides[e.index]
	if !slide.HasLink() {
		return nil
	}
	return []Effect{FollowLink{URL: strings.TrimSpace(*slide.Link)}}
}

func (e *Engine) autoplayTick(ev AutoplayTick) []Effect {
	if ev.Gen != e.autoplayGen || !e.canLoop() {
		return nil
	}
	var effects []Effect
	if !e.drag.active && !e.midTeleport && e.ready() {
		effects = e.apply(Next, 0)
	}
	return append(effects, ArmAutoplay{Gen: e.autoplayGen, After: e.opts.AutoplayInterval})
}

// resetAutoplay invalidates any pending tick and arms a fresh one.
func (e *Engine) resetAutoplay() []Effect {
	e.autoplayGen++
	if !e.canLoop() {
		return nil
	}
	return []Effect{ArmAutoplay{Gen: e.autoplayGen, After: e.opts.AutoplayInterval}}
}

func (e *Engine) stopAutoplay() {
	e.autoplayGen++
}
