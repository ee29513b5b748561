package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/carousel/internal/carousel"
)

// Snapshot is the latest slide list available to the UI.
type Snapshot struct {
	Slides              []carousel.SlideSource
	Loaded              bool   // at least one load attempt finished
	Version             uint64 // bumped whenever Slides is replaced
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsStale reports whether recent refreshes have been failing.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates the loader goroutine and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the slide list wholesale. When err is non-nil the previous
// list is kept and the error recorded; a failed first load leaves the list
// empty but still marks the store Loaded.
func (s *Store) Update(slides []carousel.SlideSource, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := !s.snapshot.Loaded
	s.snapshot.Loaded = true
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		if first {
			s.snapshot.Version++
		}
		return
	}

	s.snapshot.Slides = cloneSlides(slides)
	s.snapshot.Version++
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Slides = cloneSlides(s.snapshot.Slides)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneSlides(items []carousel.SlideSource) []carousel.SlideSource {
	if len(items) == 0 {
		return nil
	}
	dup := make([]carousel.SlideSource, len(items))
	copy(dup, items)
	return dup
}
