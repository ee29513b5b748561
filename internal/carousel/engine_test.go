package carousel

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
)

func makeSources(n int) []SlideSource {
	out := make([]SlideSource, n)
	for i := range out {
		out[i] = SlideSource{
			Title: fmt.Sprintf("slide %d", i),
			Images: ImageSet{
				Mobile:  strPtr(fmt.Sprintf("m%d.jpg", i)),
				Tablet:  strPtr(fmt.Sprintf("t%d.jpg", i)),
				Desktop: strPtr(fmt.Sprintf("d%d.jpg", i)),
			},
		}
	}
	return out
}

func loaded(t *testing.T, n int, width float64) *Engine {
	t.Helper()
	e := New(DefaultOptions())
	e.Dispatch(Resize{ViewportWidth: 1280, ContainerWidth: width})
	e.Dispatch(SlidesLoaded{Slides: makeSources(n)})
	e.Dispatch(Painted{})
	return e
}

func armedAutoplay(effects []Effect) (uint64, bool) {
	for _, eff := range effects {
		if a, ok := eff.(ArmAutoplay); ok {
			return a.Gen, true
		}
	}
	return 0, false
}

func settleAll(e *Engine, effects []Effect) int {
	count := 0
	for _, eff := range effects {
		if s, ok := eff.(ArmSettle); ok {
			e.Dispatch(SettleTick{Gen: s.Gen})
			count++
		}
	}
	return count
}

func TestNew_LoadingUntilSlidesArrive(t *testing.T) {
	e := New(DefaultOptions())
	f := e.Frame()
	if !f.Loading || f.Ready {
		t.Fatalf("frame = %+v, want loading and not ready", f)
	}
	e.Dispatch(SlidesLoaded{Slides: makeSources(2)})
	if e.Frame().Loading {
		t.Fatalf("frame still loading after SlidesLoaded")
	}
}

// N=3 at desktop, three autoplay ticks with no interaction.
func TestAutoplay_WrapsWithTeleport(t *testing.T) {
	e := New(DefaultOptions())
	e.Dispatch(Resize{ViewportWidth: 1280, ContainerWidth: 1200})
	effects := e.Dispatch(SlidesLoaded{Slides: makeSources(3)})
	gen, ok := armedAutoplay(effects)
	if !ok {
		t.Fatalf("load effects = %#v, want ArmAutoplay", effects)
	}
	if e.Frame().Class != Desktop {
		t.Fatalf("class = %v, want desktop", e.Frame().Class)
	}

	var seq []int
	seq = append(seq, e.State().CurrentIndex)
	var last []Effect
	for i := 0; i < 3; i++ {
		last = e.Dispatch(AutoplayTick{Gen: gen})
		next, ok := armedAutoplay(last)
		if !ok || next != gen {
			t.Fatalf("tick %d effects = %#v, want re-arm with gen %d", i, last, gen)
		}
		if !e.State().MidTeleport {
			seq = append(seq, e.State().CurrentIndex)
		}
	}

	st := e.State()
	if !st.MidTeleport || st.PixelOffset != -4*1200 {
		t.Fatalf("after third tick state = %+v, want mid-teleport at trailing clone", st)
	}
	if f := e.Frame(); !f.Dots[0].Active {
		t.Fatalf("active dot during teleport = %+v, want settle target 0", f.Dots)
	}
	if n := settleAll(e, last); n != 1 {
		t.Fatalf("settle timers = %d, want 1", n)
	}
	seq = append(seq, e.State().CurrentIndex)

	want := []int{0, 1, 2, 0}
	if fmt.Sprint(seq) != fmt.Sprint(want) {
		t.Fatalf("index sequence = %v, want %v", seq, want)
	}
	st = e.State()
	if st.PixelOffset != -1200 || st.Mode != ModeInstant {
		t.Fatalf("settled state = %+v, want offset -1200 instant", st)
	}
	if e.Frame().TransitionEnabled {
		t.Fatalf("transition must be suppressed for the teleport frame")
	}
	e.Dispatch(Painted{})
	if f := e.Frame(); f.Mode != ModeIdle || !f.TransitionEnabled {
		t.Fatalf("after paint frame mode = %v enabled = %v, want idle/enabled", f.Mode, f.TransitionEnabled)
	}
}

func TestEmptySlides(t *testing.T) {
	e := New(DefaultOptions())
	e.Dispatch(Resize{ViewportWidth: 1280, ContainerWidth: 1200})
	effects := e.Dispatch(SlidesLoaded{})
	if len(effects) != 0 {
		t.Fatalf("load effects = %#v, want no autoplay", effects)
	}
	f := e.Frame()
	if f.Loading || len(f.Track) != 0 || len(f.Dots) != 0 {
		t.Fatalf("frame = %+v, want empty track without dots", f)
	}

	e.Dispatch(PointerDown{X: 10})
	if e.State().Dragging {
		t.Fatalf("drag accepted with no slides")
	}
	if effects := e.Dispatch(Navigate{Intent: Next}); len(effects) != 0 {
		t.Fatalf("navigate effects = %#v, want none", effects)
	}
	if effects := e.Dispatch(AutoplayTick{Gen: e.autoplayGen}); len(effects) != 0 {
		t.Fatalf("autoplay effects = %#v, want none", effects)
	}
}

func TestSingleSlide(t *testing.T) {
	e := New(DefaultOptions())
	e.Dispatch(Resize{ViewportWidth: 1280, ContainerWidth: 1200})
	effects := e.Dispatch(SlidesLoaded{Slides: makeSources(1)})
	if len(effects) != 0 {
		t.Fatalf("load effects = %#v, want no autoplay", effects)
	}
	f := e.Frame()
	if len(f.Track) != 1 || f.Track[0].Clone || len(f.Dots) != 0 {
		t.Fatalf("frame = %+v, want one real slot and no dots", f)
	}

	e.Dispatch(PointerDown{X: 800})
	if !e.State().Dragging {
		t.Fatalf("drag should be accepted for a single slide")
	}
	e.Dispatch(PointerMove{X: 100})
	effects = e.Dispatch(PointerUp{})
	if len(effects) != 0 {
		t.Fatalf("release effects = %#v, want none", effects)
	}
	if st := e.State(); st.CurrentIndex != 0 || st.PixelOffset != 0 {
		t.Fatalf("state = %+v, want index 0 at offset 0", st)
	}
}

// Desktop at index 1, then a resize to mobile.
func TestResize_RecomputesOffsetWithoutAnimation(t *testing.T) {
	e := loaded(t, 3, 1200)
	e.Dispatch(Navigate{Intent: GoTo, Index: 1})
	e.Dispatch(Painted{})
	if st := e.State(); st.PixelOffset != -2400 {
		t.Fatalf("offset = %v, want -2400", st.PixelOffset)
	}

	e.Dispatch(Resize{ViewportWidth: 400, ContainerWidth: 400})
	f := e.Frame()
	if f.Class != Mobile {
		t.Fatalf("class = %v, want mobile", f.Class)
	}
	if f.Offset != -800 || f.Index != 1 {
		t.Fatalf("frame offset = %v index = %d, want -800 at 1", f.Offset, f.Index)
	}
	if f.TransitionEnabled || f.Mode != ModeInstant {
		t.Fatalf("resize frame must suppress the transition, got mode %v", f.Mode)
	}
	if url := f.Track[2].Slide.ImageURL; url == nil || *url != "m1.jpg" {
		t.Fatalf("slot 2 image = %v, want m1.jpg", url)
	}
}

func TestResize_Idempotent(t *testing.T) {
	e := loaded(t, 4, 900)
	e.Dispatch(Navigate{Intent: GoTo, Index: 2})

	e.Dispatch(Resize{ViewportWidth: 900, ContainerWidth: 880})
	first := e.State()
	firstFrame := e.Frame()
	e.Dispatch(Resize{ViewportWidth: 900, ContainerWidth: 880})
	if e.State() != first {
		t.Fatalf("second resize changed state: %+v vs %+v", e.State(), first)
	}
	if e.Frame().Class != firstFrame.Class || e.Frame().Offset != firstFrame.Offset {
		t.Fatalf("second resize changed frame")
	}
}

func TestZeroWidthIsNotReady(t *testing.T) {
	e := New(DefaultOptions())
	e.Dispatch(SlidesLoaded{Slides: makeSources(3)})

	e.Dispatch(Navigate{Intent: Next})
	st := e.State()
	if st.CurrentIndex != 0 || st.PixelOffset != 0 || math.IsNaN(st.PixelOffset) {
		t.Fatalf("state = %+v, want untouched index and zero offset", st)
	}

	e.Dispatch(PointerDown{X: 10})
	e.Dispatch(PointerMove{X: 500})
	e.Dispatch(PointerUp{})
	if st := e.State(); st.CurrentIndex != 0 || math.IsNaN(st.PixelOffset) {
		t.Fatalf("state after drag = %+v, want index 0", st)
	}

	e.Dispatch(Resize{ViewportWidth: 1280, ContainerWidth: 1000})
	if !e.Frame().Ready || e.State().PixelOffset != -1000 {
		t.Fatalf("after resize frame = %+v", e.Frame())
	}
}

func TestNavigate_GoToClampsAndResetsAutoplay(t *testing.T) {
	e := loaded(t, 4, 1000)
	oldGen := e.autoplayGen

	effects := e.Dispatch(Navigate{Intent: GoTo, Index: 99})
	if st := e.State(); st.CurrentIndex != 3 {
		t.Fatalf("index = %d, want clamped to 3", st.CurrentIndex)
	}
	gen, ok := armedAutoplay(effects)
	if !ok || gen == oldGen {
		t.Fatalf("effects = %#v, want fresh autoplay generation", effects)
	}
	if effects := e.Dispatch(AutoplayTick{Gen: oldGen}); len(effects) != 0 {
		t.Fatalf("stale tick effects = %#v, want ignored", effects)
	}
	if st := e.State(); st.CurrentIndex != 3 {
		t.Fatalf("stale tick moved index to %d", st.CurrentIndex)
	}

	e.Dispatch(Navigate{Intent: GoTo, Index: -5})
	if st := e.State(); st.CurrentIndex != 0 {
		t.Fatalf("index = %d, want clamped to 0", st.CurrentIndex)
	}
}

func TestNavigate_IgnoredMidTeleport(t *testing.T) {
	e := loaded(t, 3, 1000)
	effects := e.Dispatch(Navigate{Intent: Previous})
	if !e.State().MidTeleport {
		t.Fatalf("expected teleport from index 0")
	}
	if got := e.Dispatch(Navigate{Intent: GoTo, Index: 1}); len(got) != 0 {
		t.Fatalf("dot during teleport = %#v, want no-op", got)
	}
	if got := e.Dispatch(Navigate{Intent: Previous}); len(got) != 0 {
		t.Fatalf("second overrun during teleport = %#v, want no-op", got)
	}
	if n := settleAll(e, effects); n != 1 {
		t.Fatalf("settle timers = %d, want 1", n)
	}
	if st := e.State(); st.CurrentIndex != 2 || st.MidTeleport {
		t.Fatalf("state = %+v, want settled at 2", st)
	}
}

func TestSettle_StaleGenerationIgnored(t *testing.T) {
	e := loaded(t, 3, 1000)
	effects := e.Dispatch(Navigate{Intent: Previous})
	e.Dispatch(SlidesLoaded{Slides: makeSources(3)})
	settleAll(e, effects)
	if st := e.State(); st.CurrentIndex != 2 || st.PixelOffset != -3000 || st.MidTeleport {
		t.Fatalf("state = %+v, want reload to resolve the snap to index 2", st)
	}
}

func TestSlidesLoaded_ResolvesPendingTeleport(t *testing.T) {
	e := loaded(t, 3, 1000)
	e.Dispatch(Navigate{Intent: GoTo, Index: 2})
	effects := e.Dispatch(Navigate{Intent: Next})
	if st := e.State(); !st.MidTeleport || st.PixelOffset != -4000 {
		t.Fatalf("state = %+v, want mid-teleport at trailing clone", st)
	}

	if got := e.Dispatch(SlidesLoaded{Slides: makeSources(3)}); len(got) != 0 {
		t.Fatalf("reload of same-sized list = %#v, want no effects", got)
	}
	st := e.State()
	if st.MidTeleport || st.CurrentIndex != 0 || st.PixelOffset != -1000 || st.Mode != ModeInstant {
		t.Fatalf("after reload state = %+v, want index 0 at -1000 instant", st)
	}
	if f := e.Frame(); !f.Dots[0].Active {
		t.Fatalf("dots = %+v, want first dot active", f.Dots)
	}

	settleAll(e, effects)
	if st := e.State(); st.CurrentIndex != 0 || st.PixelOffset != -1000 {
		t.Fatalf("stale settle moved state to %+v", st)
	}
}

func TestSlidesLoaded_KeepsActiveDrag(t *testing.T) {
	e := loaded(t, 3, 1000)
	e.Dispatch(PointerDown{X: 500})
	e.Dispatch(PointerMove{X: 200})

	e.Dispatch(SlidesLoaded{Slides: makeSources(3)})
	if st := e.State(); !st.Dragging || st.PixelOffset != -1300 {
		t.Fatalf("after reload state = %+v, want drag kept at -1300", st)
	}

	e.Dispatch(PointerMove{X: 100})
	effects := e.Dispatch(PointerUp{})
	if st := e.State(); st.CurrentIndex != 1 || st.PixelOffset != -2000 {
		t.Fatalf("after release state = %+v, want index 1 at -2000", st)
	}
	if _, ok := armedAutoplay(effects); !ok {
		t.Fatalf("release effects = %#v, want ArmAutoplay", effects)
	}
}

func TestSlidesLoaded_SameCountKeepsAutoplay(t *testing.T) {
	e := loaded(t, 3, 1000)
	gen := e.autoplayGen

	if effects := e.Dispatch(SlidesLoaded{Slides: makeSources(3)}); len(effects) != 0 {
		t.Fatalf("reload effects = %#v, want none", effects)
	}
	if st := e.State(); st.Mode != ModeIdle {
		t.Fatalf("Mode = %v, want idle after unchanged reload", st.Mode)
	}
	e.Dispatch(AutoplayTick{Gen: gen})
	if st := e.State(); st.CurrentIndex != 1 {
		t.Fatalf("index = %d, want autoplay tick to advance to 1", st.CurrentIndex)
	}

	next, ok := armedAutoplay(e.Dispatch(SlidesLoaded{Slides: makeSources(4)}))
	if !ok || next <= gen {
		t.Fatalf("reload with new count should re-arm autoplay, got gen %d ok %v", next, ok)
	}
}

func TestDragCancelsAutoplay(t *testing.T) {
	e := New(DefaultOptions())
	e.Dispatch(Resize{ViewportWidth: 1280, ContainerWidth: 1000})
	gen, _ := armedAutoplay(e.Dispatch(SlidesLoaded{Slides: makeSources(3)}))

	e.Dispatch(PointerDown{X: 100})
	if effects := e.Dispatch(AutoplayTick{Gen: gen}); len(effects) != 0 {
		t.Fatalf("tick during drag = %#v, want cancelled", effects)
	}
	if st := e.State(); st.CurrentIndex != 0 {
		t.Fatalf("index = %d, want 0", st.CurrentIndex)
	}
}

func TestSlidesLoaded_ReplacesWholesale(t *testing.T) {
	e := loaded(t, 3, 1000)
	e.Dispatch(Navigate{Intent: GoTo, Index: 2})

	e.Dispatch(SlidesLoaded{Slides: makeSources(2)})
	if st := e.State(); st.CurrentIndex != 1 || st.PixelOffset != -2000 {
		t.Fatalf("state = %+v, want index clamped to 1", st)
	}
	if f := e.Frame(); len(f.Track) != 4 || len(f.Dots) != 2 {
		t.Fatalf("frame track=%d dots=%d, want 4/2", len(f.Track), len(f.Dots))
	}

	effects := e.Dispatch(SlidesLoaded{Slides: makeSources(5), Err: errors.New("fetch failed")})
	if len(effects) != 0 || e.Len() != 0 {
		t.Fatalf("failed load should fall back to empty, got len %d effects %#v", e.Len(), effects)
	}
}

func TestIndexStaysInRangeForRandomIntents(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 2; n <= 6; n++ {
		e := loaded(t, n, 500)
		for step := 0; step < 200; step++ {
			intent := Next
			if rng.Intn(2) == 0 {
				intent = Previous
			}
			effects := e.Dispatch(Navigate{Intent: intent})
			if settled := settleAll(e, effects); settled > 1 {
				t.Fatalf("n=%d step=%d: %d teleports for one intent", n, step, settled)
			}
			st := e.State()
			if st.CurrentIndex < 0 || st.CurrentIndex >= n || st.MidTeleport {
				t.Fatalf("n=%d step=%d: state %+v out of range", n, step, st)
			}
			if st.PixelOffset != CanonicalOffset(st.CurrentIndex, n, 500) {
				t.Fatalf("n=%d step=%d: offset %v not canonical", n, step, st.PixelOffset)
			}
		}
	}
}

func TestNavigate_RoundTrip(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for start := 0; start < n; start++ {
			for _, intent := range []Intent{Next, Previous} {
				e := loaded(t, n, 640)
				e.Dispatch(Navigate{Intent: GoTo, Index: start})
				for i := 0; i < n; i++ {
					settleAll(e, e.Dispatch(Navigate{Intent: intent}))
				}
				if got := e.State().CurrentIndex; got != start {
					t.Fatalf("n=%d start=%d %v x%d ended at %d", n, start, intent, n, got)
				}
			}
		}
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	a := loaded(t, 3, 1000)
	b := loaded(t, 3, 1000)
	a.Dispatch(Navigate{Intent: Next})
	if b.State().CurrentIndex != 0 {
		t.Fatalf("engine b moved with engine a")
	}
}
