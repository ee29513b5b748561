package carousel

import "math"

type drag struct {
	active bool
	kind   PointerKind
	startX float64
	delta  float64
}

// ResolveRelease turns the distance a drag displaced the track into an
// intent. A positive delta means the track was pulled right, revealing the
// previous slide.
func ResolveRelease(dragDelta, slotWidth, commitRatio float64) Intent {
	if !positive(slotWidth) || !positive(commitRatio) {
		return Stay
	}
	if math.Abs(dragDelta) < slotWidth*commitRatio {
		return Stay
	}
	if dragDelta > 0 {
		return Previous
	}
	return Next
}

func (e *Engine) startDrag(ev PointerDown) {
	if e.drag.active || e.midTeleport || len(e.slides) == 0 {
		return
	}
	e.drag = drag{active: true, kind: ev.Kind, startX: ev.X}
	e.moved = false
	e.stopAutoplay()
}

func (e *Engine) moveDrag(ev PointerMove) {
	if !e.drag.active {
		return
	}
	delta := ev.X - e.drag.startX
	e.drag.delta = delta
	e.offset = e.canonical() + delta
	if math.Abs(delta) > e.opts.MoveTolerance {
		e.moved = true
	}
}

func (e *Engine) releaseDrag() []Effect {
	if !e.drag.active {
		return nil
	}
	dragDelta := e.offset - e.canonical()
	e.drag = drag{}
	intent := ResolveRelease(dragDelta, e.slotWidth, e.opts.CommitRatio)
	if intent != Stay {
		// On a narrow slot the commit threshold can sit below MoveTolerance;
		// a gesture that changed slide is never a tap.
		e.moved = true
	}
	effects := e.apply(intent, e.index)
	return append(effects, e.resetAutoplay()...)
}
