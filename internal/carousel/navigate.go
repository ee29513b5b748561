package carousel

func (e *Engine) navigate(ev Navigate) []Effect {
	if e.midTeleport || e.drag.active || len(e.slides) == 0 {
		return nil
	}
	effects := e.apply(ev.Intent, ev.Index)
	return append(effects, e.resetAutoplay()...)
}

// apply moves to the slide selected by intent. Crossing either end animates
// into the matching clone slot and schedules the snap back.
func (e *Engine) apply(intent Intent, index int) []Effect {
	n := len(e.slides)
	if n <= 1 || !e.ready() || e.midTeleport {
		e.offset = e.restingOffset()
		e.mode = ModeAnimated
		return nil
	}

	target := e.index
	switch intent {
	case Next:
		target = e.index + 1
	case Previous:
		target = e.index - 1
	case GoTo:
		target = clampIndex(index, n)
	}

	e.mode = ModeAnimated
	switch {
	case target < 0:
		return e.beginTeleport(0, n-1)
	case target >= n:
		return e.beginTeleport(n+1, 0)
	}
	e.index = target
	e.offset = e.canonical()
	return nil
}

func (e *Engine) beginTeleport(slot, settleTo int) []Effect {
	e.midTeleport = true
	e.excursion = slot
	e.settleTo = settleTo
	e.offset = slotOffset(slot, e.slotWidth)
	e.settleGen++
	return []Effect{ArmSettle{Gen: e.settleGen, After: e.opts.TransitionDuration}}
}

func (e *Engine) settle(ev SettleTick) {
	if !e.midTeleport || ev.Gen != e.settleGen {
		return
	}
	e.midTeleport = false
	e.index = e.settleTo
	e.offset = e.canonical()
	e.mode = ModeInstant
}
