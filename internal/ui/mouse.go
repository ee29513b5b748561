package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carousel/internal/carousel"
)

// handleMouse maps cell-motion mouse events onto pointer events. A press on
// the dot row jumps to that slide; a press on the track starts a drag, and a
// release over the track also counts as a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showLog {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i, ok := m.dotAt(msg.X, msg.Y); ok {
			return m, m.dispatch(carousel.Navigate{Intent: carousel.GoTo, Index: i})
		}
		if !m.overTrack(msg.X, msg.Y) {
			return m, nil
		}
		m.pressed = true
		return m, m.dispatch(carousel.PointerDown{X: float64(msg.X), Kind: carousel.Mouse})

	case tea.MouseActionMotion:
		if !m.pressed {
			return m, nil
		}
		return m, m.dispatch(carousel.PointerMove{X: float64(msg.X)})

	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		up := m.dispatch(carousel.PointerUp{})
		if !m.overTrack(msg.X, msg.Y) {
			return m, up
		}
		return m, tea.Batch(up, m.dispatch(carousel.Click{}))
	}

	return m, nil
}

// overTrack reports whether a cell lies on the slide track.
func (m Model) overTrack(x, y int) bool {
	top := headerRows
	if y < top || y >= top+trackRows(m.height) {
		return false
	}
	return x >= framePadding && x < framePadding+containerWidth(m.width)
}

// dotAt returns the dot under a cell, if any.
func (m Model) dotAt(x, y int) (int, bool) {
	if y != headerRows+trackRows(m.height) {
		return 0, false
	}
	dots := m.engine.Frame().Dots
	left, span := m.dotsLayout(len(dots))
	if span == 0 || x < left || x >= left+span {
		return 0, false
	}
	off := x - left
	if off%2 != 0 {
		return 0, false
	}
	return off / 2, true
}
