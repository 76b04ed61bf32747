// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"math"
	"testing"
	"time"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		fn, ok := EasingByName(name)
		if !ok {
			t.Fatalf("EasingByName(%q) not found", name)
		}
		if got := fn(0); math.Abs(got) > 1e-12 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-12 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEaseInOutSineShape(t *testing.T) {
	if got := EaseInOutSine(1); got != 1 {
		t.Fatalf("EaseInOutSine(1) = %v, want exactly 1", got)
	}
	if got := EaseInOutSine(0.5); math.Abs(got-0.5) > 1e-15 {
		t.Fatalf("EaseInOutSine(0.5) = %v, want 0.5", got)
	}

	prev := EaseInOutSine(0)
	for i := 1; i <= 1000; i++ {
		r := float64(i) / 1000
		cur := EaseInOutSine(r)
		if cur < prev {
			t.Fatalf("not monotonic at %v: %v < %v", r, cur, prev)
		}
		// symmetric around 0.5
		if mirror := 1 - EaseInOutSine(1-r); math.Abs(mirror-cur) > 1e-12 {
			t.Fatalf("asymmetric at %v: %v vs %v", r, cur, mirror)
		}
		prev = cur
	}
}

func TestEasingByNameNormalizes(t *testing.T) {
	if _, ok := EasingByName("  Sine "); !ok {
		t.Fatalf("expected case/space-insensitive lookup")
	}
	if _, ok := EasingByName("bounce"); ok {
		t.Fatalf("did not expect unknown easing to resolve")
	}
}

func TestTimelineAnimatesWithExplicitClock(t *testing.T) {
	tl := NewTimeline(0)
	base := time.Unix(0, 0)

	tl.AnimateToWithOptions("word", 1, AnimateOptions{Duration: 100 * time.Millisecond, Easing: EaseLinear}, base)

	if got := tl.Get("word", base.Add(50*time.Millisecond)); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("midpoint = %v, want 0.5", got)
	}
	if !tl.IsAnimating("word", base.Add(50*time.Millisecond)) {
		t.Fatalf("expected animation in progress")
	}
	if got := tl.Get("word", base.Add(200*time.Millisecond)); got != 1 {
		t.Fatalf("end = %v, want 1", got)
	}
	if tl.HasActiveAnimations(base.Add(200 * time.Millisecond)) {
		t.Fatalf("expected no active animations after completion")
	}
}

func TestTimelineDelayHoldsStartValue(t *testing.T) {
	tl := NewTimeline(0)
	base := time.Unix(0, 0)
	tl.AnimateToWithOptions("line", 1, AnimateOptions{
		Duration: 100 * time.Millisecond,
		Delay:    500 * time.Millisecond,
		Easing:   EaseLinear,
	}, base)

	if got := tl.Get("line", base.Add(400*time.Millisecond)); got != 0 {
		t.Fatalf("value during delay = %v, want 0", got)
	}
	if !tl.HasActiveAnimations(base.Add(400 * time.Millisecond)) {
		t.Fatalf("delayed animation should count as active")
	}
	if got := tl.Get("line", base.Add(550*time.Millisecond)); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("value after delay = %v, want 0.5", got)
	}
}

func TestTimelineRetargetStartsFromCurrent(t *testing.T) {
	tl := NewTimeline(0)
	base := time.Unix(0, 0)
	opts := AnimateOptions{Duration: 100 * time.Millisecond, Easing: EaseLinear}

	tl.AnimateToWithOptions("k", 1, opts, base)
	mid := base.Add(50 * time.Millisecond)
	if got := tl.AnimateToWithOptions("k", 0, opts, mid); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("retarget start = %v, want 0.5", got)
	}
	if got := tl.Get("k", mid.Add(100*time.Millisecond)); got != 0 {
		t.Fatalf("retarget end = %v, want 0", got)
	}
}

func TestTimelineZeroDurationJumps(t *testing.T) {
	tl := NewTimeline(0.25)
	now := time.Unix(0, 0)
	if got := tl.Get("missing", now); got != 0.25 {
		t.Fatalf("default initial = %v, want 0.25", got)
	}
	if got := tl.AnimateTo("k", 1, 0, now); got != 1 {
		t.Fatalf("instant animate = %v, want 1", got)
	}
	tl.Reset("k")
	if got := tl.Get("k", now); got != 0.25 {
		t.Fatalf("after reset = %v, want 0.25", got)
	}
}
