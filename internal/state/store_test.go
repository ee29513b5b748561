package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/carousel/internal/carousel"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update([]carousel.SlideSource{{Title: "a"}, {Title: "b"}}, nil)

	snap := s.Snapshot()
	if !snap.Loaded || snap.Version != 1 {
		t.Fatalf("snapshot = %+v, want loaded at version 1", snap)
	}
	if len(snap.Slides) != 2 || snap.Slides[0].Title != "a" {
		t.Fatalf("snapshot slides = %#v, want 2 items", snap.Slides)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Slides[0].Title = "mutated"
	if got := s.Snapshot().Slides[0].Title; got != "a" {
		t.Fatalf("Snapshot should clone slides; got %q want a", got)
	}
}

func TestStore_ReplacesWholesale(t *testing.T) {
	var s Store
	s.Update([]carousel.SlideSource{{Title: "a"}, {Title: "b"}, {Title: "c"}}, nil)
	s.Update([]carousel.SlideSource{{Title: "z"}}, nil)

	snap := s.Snapshot()
	if len(snap.Slides) != 1 || snap.Slides[0].Title != "z" || snap.Version != 2 {
		t.Fatalf("snapshot = %+v, want only z at version 2", snap)
	}
}

func TestStore_FirstFailureMarksLoadedEmpty(t *testing.T) {
	var s Store
	s.Update(nil, errors.New("feed down"))

	snap := s.Snapshot()
	if !snap.Loaded || len(snap.Slides) != 0 || snap.Version != 1 {
		t.Fatalf("snapshot = %+v, want loaded, empty, version 1", snap)
	}
	if snap.LastError == nil || snap.LastError.Error() != "feed down" {
		t.Fatalf("LastError = %v, want feed down", snap.LastError)
	}
}

func TestStore_UpdateErrorKeepsPreviousSlides(t *testing.T) {
	var s Store
	s.Update([]carousel.SlideSource{{Title: "keep"}}, nil)

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.Slides) != 1 || snap.Slides[0].Title != "keep" {
		t.Fatalf("slides changed on error: %#v", snap.Slides)
	}
	if snap.Version != 1 {
		t.Fatalf("Version = %d, want 1 (no new list)", snap.Version)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store
	if s.Snapshot().IsStale() {
		t.Fatal("IsStale() = true, want false with 0 failures")
	}

	s.Update(nil, errors.New("fail 1"))
	if s.Snapshot().IsStale() {
		t.Fatal("IsStale() = true, want false with 1 failure")
	}
	s.Update(nil, errors.New("fail 2"))
	if !s.Snapshot().IsStale() {
		t.Fatal("IsStale() = false, want true with 2 failures")
	}

	s.Update([]carousel.SlideSource{{Title: "ok"}}, nil)
	if snap := s.Snapshot(); snap.IsStale() || snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
}
