// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/scheduler.go
// Summary: Frame schedulers for eased scroll runs.
// Usage: TickerScheduler for standalone timing, LoopScheduler for a host event loop.
// Notes: All callbacks queued for one frame receive the same timestamp.

package scroll

import (
	"sync"
	"time"
)

// DefaultFrameInterval paces frames at roughly 60 per second.
const DefaultFrameInterval = 16 * time.Millisecond

// TickerScheduler delivers frames on its own timer goroutine.
// Callbacks run on that goroutine, so the Viewport must tolerate writes from it.
type TickerScheduler struct {
	interval time.Duration
	origin   time.Time

	mu      sync.Mutex
	pending []FrameFunc
	timer   *time.Timer
	closed  bool
}

// NewTickerScheduler creates a scheduler firing interval after each request.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerScheduler{
		interval: interval,
		origin:   time.Now(),
	}
}

// RequestFrame queues fn for the next frame.
func (s *TickerScheduler) RequestFrame(fn FrameFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || fn == nil {
		return
	}
	s.pending = append(s.pending, fn)
	if s.timer == nil {
		s.timer = time.AfterFunc(s.interval, s.fire)
	}
}

// Close drops pending frames and rejects new requests.
func (s *TickerScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *TickerScheduler) fire() {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.timer = nil
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return
	}
	ts := time.Since(s.origin)
	for _, fn := range batch {
		fn(ts)
	}
}

// LoopScheduler queues frames for a single-threaded host loop that calls
// Pump once per rendered frame.
type LoopScheduler struct {
	origin time.Time

	mu      sync.Mutex
	pending []FrameFunc
}

// NewLoopScheduler creates a scheduler whose timestamps count from origin.
func NewLoopScheduler(origin time.Time) *LoopScheduler {
	return &LoopScheduler{origin: origin}
}

// RequestFrame queues fn for the next Pump.
func (s *LoopScheduler) RequestFrame(fn FrameFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *LoopScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Pump runs the callbacks queued before this call with the timestamp for now.
// Callbacks requested while pumping wait for the next Pump.
func (s *LoopScheduler) Pump(now time.Time) int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	ts := now.Sub(s.origin)
	for _, fn := range batch {
		fn(ts)
	}
	return len(batch)
}
