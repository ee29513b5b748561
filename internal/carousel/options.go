package carousel

import (
	"math"
	"time"
)

// Default engine tuning. Widths are in pixels (or terminal cells for a TUI host).
const (
	DefaultMobileMax          = 768
	DefaultTabletMax          = 1024
	DefaultAutoplayInterval   = 7 * time.Second
	DefaultCommitRatio        = 0.15
	DefaultTransitionDuration = 300 * time.Millisecond
	DefaultMoveTolerance      = 5
)

// Options configure a single Engine. They are fixed at construction.
type Options struct {
	Breakpoints Breakpoints

	// AutoplayInterval is the delay between forward advances while idle.
	AutoplayInterval time.Duration

	// CommitRatio is the fraction of the slot width a drag must cover on
	// release to navigate instead of springing back.
	CommitRatio float64

	// TransitionDuration must match the host's animation length; the
	// clone-to-real snap is scheduled after it.
	TransitionDuration time.Duration

	// MoveTolerance is the drag distance above which the gesture counts as a
	// drag rather than a click.
	MoveTolerance float64
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{
		Breakpoints:        Breakpoints{MobileMax: DefaultMobileMax, TabletMax: DefaultTabletMax},
		AutoplayInterval:   DefaultAutoplayInterval,
		CommitRatio:        DefaultCommitRatio,
		TransitionDuration: DefaultTransitionDuration,
		MoveTolerance:      DefaultMoveTolerance,
	}
}

// normalized replaces unusable values with defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if !positive(o.Breakpoints.MobileMax) {
		o.Breakpoints.MobileMax = def.Breakpoints.MobileMax
	}
	if !positive(o.Breakpoints.TabletMax) {
		o.Breakpoints.TabletMax = def.Breakpoints.TabletMax
	}
	if o.Breakpoints.TabletMax < o.Breakpoints.MobileMax {
		o.Breakpoints.TabletMax = o.Breakpoints.MobileMax
	}
	if o.AutoplayInterval <= 0 {
		o.AutoplayInterval = def.AutoplayInterval
	}
	if !positive(o.CommitRatio) || o.CommitRatio > 1 {
		o.CommitRatio = def.CommitRatio
	}
	if o.TransitionDuration <= 0 {
		o.TransitionDuration = def.TransitionDuration
	}
	if o.MoveTolerance < 0 || math.IsNaN(o.MoveTolerance) {
		o.MoveTolerance = def.MoveTolerance
	}
	return o
}

func positive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
