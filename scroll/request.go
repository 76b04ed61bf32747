// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/request.go
// Summary: Pure trajectory state for one eased scroll run.
// Usage: Animator feeds frame timestamps into Request.Advance.

package scroll

import (
	"time"

	"github.com/framegrace/texelscroll/internal/effects"
)

// Request is the trajectory of a single run from Start to Target.
// It is owned by the run that created it and is not safe for concurrent use.
type Request struct {
	Target   float64
	Start    float64
	Distance float64
	Duration time.Duration

	easing  effects.EasingFunc
	startTS time.Duration
	started bool
}

// Step is the outcome of advancing a request to one frame timestamp.
type Step struct {
	Position float64
	Ratio    float64
	Elapsed  time.Duration
	Done     bool
}

// NewRequest builds a run from start to target. A nil easing selects
// effects.EaseInOutSine.
func NewRequest(start, target float64, duration time.Duration, easing effects.EasingFunc) *Request {
	if easing == nil {
		easing = effects.EaseInOutSine
	}
	return &Request{
		Target:   target,
		Start:    start,
		Distance: target - start,
		Duration: duration,
		easing:   easing,
	}
}

// Started reports whether the first frame has been received.
func (r *Request) Started() bool {
	return r.started
}

// StartTimestamp returns the timestamp of the first frame, if any.
func (r *Request) StartTimestamp() (time.Duration, bool) {
	return r.startTS, r.started
}

// Advance computes the position for frame timestamp ts. The first call
// pins the start timestamp. Once elapsed reaches Duration the step is
// terminal and Position is exactly Target.
func (r *Request) Advance(ts time.Duration) Step {
	if !r.started {
		r.startTS = ts
		r.started = true
	}

	elapsed := ts - r.startTS
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed >= r.Duration {
		return Step{Position: r.Target, Ratio: 1, Elapsed: elapsed, Done: true}
	}

	ratio := Ratio(elapsed, r.Duration)
	return Step{
		Position: r.Start + r.Distance*r.easing(ratio),
		Ratio:    ratio,
		Elapsed:  elapsed,
	}
}

// Ratio is elapsed/duration clamped to [0,1]. A non-positive duration is complete.
func Ratio(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return effects.Clamp01(float64(elapsed) / float64(duration))
}
