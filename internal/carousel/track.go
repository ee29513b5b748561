package carousel

// TrackSlot is one physical slot of the rendered strip.
type TrackSlot struct {
	Slide   DisplaySlide
	Logical int
	Clone   bool
}

// BuildTrack wraps slides with a leading clone of the last slide and a
// trailing clone of the first. Zero or one slide is returned unwrapped.
func BuildTrack(slides []DisplaySlide) []TrackSlot {
	n := len(slides)
	switch n {
	case 0:
		return nil
	case 1:
		return []TrackSlot{{Slide: slides[0]}}
	}
	track := make([]TrackSlot, 0, n+2)
	track = append(track, TrackSlot{Slide: slides[n-1], Logical: n - 1, Clone: true})
	for i, s := range slides {
		track = append(track, TrackSlot{Slide: s, Logical: i})
	}
	track = append(track, TrackSlot{Slide: slides[0], Logical: 0, Clone: true})
	return track
}

// PhysicalIndex returns the track position of logical slide i in a track
// built from n slides.
func PhysicalIndex(i, n int) int {
	if n >= 2 {
		return i + 1
	}
	return i
}

// CanonicalOffset is the track offset that shows logical slide i.
func CanonicalOffset(i, n int, slotWidth float64) float64 {
	return slotOffset(PhysicalIndex(i, n), slotWidth)
}

func slotOffset(physical int, slotWidth float64) float64 {
	if slotWidth <= 0 || physical == 0 {
		return 0
	}
	return -float64(physical) * slotWidth
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
