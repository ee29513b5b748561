package carousel

import "testing"

func TestBreakpointsClassify(t *testing.T) {
	b := Breakpoints{MobileMax: 768, TabletMax: 1024}
	cases := []struct {
		width float64
		want  DeviceClass
	}{
		{0, Mobile},
		{375, Mobile},
		{767.9, Mobile},
		{768, Tablet},
		{1023, Tablet},
		{1024, Desktop},
		{2560, Desktop},
	}
	for _, tc := range cases {
		if got := b.Classify(tc.width); got != tc.want {
			t.Fatalf("Classify(%v) = %v, want %v", tc.width, got, tc.want)
		}
		if again := b.Classify(tc.width); again != b.Classify(tc.width) {
			t.Fatalf("Classify(%v) not stable", tc.width)
		}
	}
}

func TestDeviceClassString(t *testing.T) {
	if Mobile.String() != "mobile" || Tablet.String() != "tablet" || Desktop.String() != "desktop" {
		t.Fatalf("unexpected class names: %s %s %s", Mobile, Tablet, Desktop)
	}
	if got := DeviceClass(9).String(); got != "unknown" {
		t.Fatalf("DeviceClass(9).String() = %q, want unknown", got)
	}
}

func TestOptionsNormalized(t *testing.T) {
	got := Options{Breakpoints: Breakpoints{MobileMax: 900, TabletMax: 600}, CommitRatio: 4}.normalized()
	if got.Breakpoints.TabletMax != 900 {
		t.Fatalf("TabletMax = %v, want clamped to MobileMax 900", got.Breakpoints.TabletMax)
	}
	if got.CommitRatio != DefaultCommitRatio {
		t.Fatalf("CommitRatio = %v, want %v", got.CommitRatio, DefaultCommitRatio)
	}
	if got.AutoplayInterval != DefaultAutoplayInterval {
		t.Fatalf("AutoplayInterval = %v, want %v", got.AutoplayInterval, DefaultAutoplayInterval)
	}
	if got.TransitionDuration != DefaultTransitionDuration {
		t.Fatalf("TransitionDuration = %v, want %v", got.TransitionDuration, DefaultTransitionDuration)
	}
}
