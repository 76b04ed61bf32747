// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Thread-safe animation timeline with configurable easing functions.
// Usage: Drives the landing headline reveal and stat counters.
// Notes: Callers pass the frame time explicitly so frames are reproducible.

package effects

import (
	"sync"
	"time"
)

// AnimateOptions configures an animation transition
type AnimateOptions struct {
	Duration time.Duration // Animation duration (default: 0 = instant)
	Delay    time.Duration // Hold at the start value before moving
	Easing   EasingFunc    // Easing function (default: EaseSmoothstep)
}

// DefaultAnimateOptions returns options with smoothstep easing
func DefaultAnimateOptions(duration time.Duration) AnimateOptions {
	return AnimateOptions{
		Duration: duration,
		Easing:   EaseSmoothstep,
	}
}

// keyState tracks animation state for a single key
type keyState struct {
	current   float64
	start     float64
	target    float64
	startTime time.Time
	delay     time.Duration
	duration  time.Duration
	easing    EasingFunc
}

// Timeline provides thread-safe, per-key animation timelines.
type Timeline struct {
	states         map[string]*keyState
	mu             sync.Mutex
	defaultEasing  EasingFunc
	defaultInitial float64
}

// NewTimeline creates a new timeline manager.
// defaultInitial is the value reported for keys that were never animated.
func NewTimeline(defaultInitial float64) *Timeline {
	return &Timeline{
		states:         make(map[string]*keyState),
		defaultEasing:  EaseSmoothstep,
		defaultInitial: defaultInitial,
	}
}

// AnimateTo starts or retargets an animation for key and returns the value at now.
func (tl *Timeline) AnimateTo(key string, target float64, duration time.Duration, now time.Time) float64 {
	return tl.AnimateToWithOptions(key, target, DefaultAnimateOptions(duration), now)
}

// AnimateToWithOptions starts an animation with custom easing and delay.
// Retargeting a running key starts the new transition from its current value.
func (tl *Timeline) AnimateToWithOptions(key string, target float64, opts AnimateOptions, now time.Time) float64 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	state := tl.states[key]
	start := tl.defaultInitial
	if state != nil {
		start = tl.computeValue(state, now)
	} else {
		state = &keyState{}
		tl.states[key] = state
	}

	state.start = start
	state.current = start
	state.target = target
	state.startTime = now
	state.delay = opts.Delay
	state.duration = opts.Duration
	state.easing = opts.Easing
	if state.easing == nil {
		state.easing = tl.defaultEasing
	}

	if (opts.Duration <= 0 && opts.Delay <= 0) || start == target {
		state.current = target
		state.duration = 0
		state.delay = 0
	}
	return state.current
}

// Get returns the animated value for key at now.
func (tl *Timeline) Get(key string, now time.Time) float64 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	state := tl.states[key]
	if state == nil {
		return tl.defaultInitial
	}
	state.current = tl.computeValue(state, now)
	return state.current
}

// IsAnimating reports whether key has not yet reached its target at now.
func (tl *Timeline) IsAnimating(key string, now time.Time) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	state := tl.states[key]
	return state != nil && tl.running(state, now)
}

// HasActiveAnimations reports whether any key is still moving at now.
func (tl *Timeline) HasActiveAnimations(now time.Time) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	for _, state := range tl.states {
		if tl.running(state, now) {
			return true
		}
	}
	return false
}

// Update advances all animations to the given time.
func (tl *Timeline) Update(now time.Time) {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	for _, state := range tl.states {
		state.current = tl.computeValue(state, now)
	}
}

// Reset removes the timeline state for a key
func (tl *Timeline) Reset(key string) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}

// Clear removes all timeline states
func (tl *Timeline) Clear() {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.states = make(map[string]*keyState)
}

// Must be called with lock held.
func (tl *Timeline) running(state *keyState, now time.Time) bool {
	if state.duration <= 0 && state.delay <= 0 {
		return false
	}
	return now.Sub(state.startTime) < state.delay+state.duration
}

// computeValue calculates the current value for a state at the given time.
// Must be called with lock held.
func (tl *Timeline) computeValue(state *keyState, now time.Time) float64 {
	if state.duration <= 0 && state.delay <= 0 {
		return state.target
	}

	elapsed := now.Sub(state.startTime) - state.delay
	if elapsed <= 0 {
		return state.start
	}
	if elapsed >= state.duration {
		return state.target
	}

	progress := Clamp01(float64(elapsed) / float64(state.duration))
	easing := state.easing
	if easing == nil {
		easing = tl.defaultEasing
	}
	return state.start + (state.target-state.start)*easing(progress)
}
