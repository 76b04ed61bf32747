// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"math"
	"testing"
	"time"

	"github.com/framegrace/texelscroll/internal/effects"
)

func TestRequestScenarioZeroToThousand(t *testing.T) {
	req := NewRequest(0, 1000, time.Second, nil)

	cases := []struct {
		ts       time.Duration
		wantPos  float64
		wantDone bool
	}{
		{0, 0, false},
		{500 * time.Millisecond, 500, false},
		{1000 * time.Millisecond, 1000, true},
	}
	for _, tc := range cases {
		s := req.Advance(tc.ts)
		if math.Abs(s.Position-tc.wantPos) > 1e-9 {
			t.Fatalf("ts=%v position = %v, want %v", tc.ts, s.Position, tc.wantPos)
		}
		if s.Done != tc.wantDone {
			t.Fatalf("ts=%v done = %v, want %v", tc.ts, s.Done, tc.wantDone)
		}
	}
}

func TestRequestStartTimestampPinnedOnFirstFrame(t *testing.T) {
	req := NewRequest(0, 100, time.Second, effects.EaseLinear)
	if req.Started() {
		t.Fatalf("request should not be started before the first frame")
	}

	s := req.Advance(5 * time.Second)
	if s.Elapsed != 0 || s.Position != 0 {
		t.Fatalf("first frame = %+v, want elapsed 0 at start", s)
	}
	if ts, ok := req.StartTimestamp(); !ok || ts != 5*time.Second {
		t.Fatalf("start timestamp = %v,%v", ts, ok)
	}

	s = req.Advance(5*time.Second + 250*time.Millisecond)
	if math.Abs(s.Position-25) > 1e-9 {
		t.Fatalf("quarter position = %v, want 25", s.Position)
	}
	if ts, _ := req.StartTimestamp(); ts != 5*time.Second {
		t.Fatalf("start timestamp moved to %v", ts)
	}
}

func TestRequestOvershootClampsRatio(t *testing.T) {
	req := NewRequest(40, -260, time.Second, nil)
	req.Advance(0)

	s := req.Advance(1700 * time.Millisecond)
	if s.Ratio != 1 {
		t.Fatalf("ratio = %v, want clamped to 1", s.Ratio)
	}
	if !s.Done || s.Position != -260 {
		t.Fatalf("overshoot step = %+v, want done at -260", s)
	}
}

func TestRequestFinalPositionIsExactTarget(t *testing.T) {
	pairs := [][2]float64{{0.1, 0.3}, {1e9 + 0.7, 3.3}, {-12.5, 1e-7}, {7, 7}}
	for _, p := range pairs {
		req := NewRequest(p[0], p[1], 16*time.Millisecond, nil)
		req.Advance(0)
		s := req.Advance(16 * time.Millisecond)
		if !s.Done || s.Position != p[1] {
			t.Fatalf("start=%v target=%v: final %+v", p[0], p[1], s)
		}
	}
}

func TestRequestZeroDurationCompletesOnFirstFrame(t *testing.T) {
	req := NewRequest(10, 20, 0, nil)
	s := req.Advance(3 * time.Millisecond)
	if !s.Done || s.Position != 20 {
		t.Fatalf("zero duration step = %+v", s)
	}
}

func TestRatioClamped(t *testing.T) {
	if got := Ratio(2*time.Second, time.Second); got != 1 {
		t.Fatalf("Ratio overshoot = %v", got)
	}
	if got := Ratio(-time.Second, time.Second); got != 0 {
		t.Fatalf("Ratio negative = %v", got)
	}
	if got := Ratio(250*time.Millisecond, time.Second); got != 0.25 {
		t.Fatalf("Ratio quarter = %v", got)
	}
}

func TestRequestPositionsMonotonic(t *testing.T) {
	req := NewRequest(0, 1000, time.Second, nil)
	prev := -1.0
	for ts := time.Duration(0); ts <= time.Second; ts += 16 * time.Millisecond {
		s := req.Advance(ts)
		if s.Position < prev {
			t.Fatalf("position went backwards at %v: %v < %v", ts, s.Position, prev)
		}
		prev = s.Position
	}
}
