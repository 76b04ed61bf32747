// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/animator.go
// Summary: Animated scrolling to anchored elements with a native fast path.
// Usage: Hosts call ScrollToElement from input handlers; frames arrive via a FrameScheduler.
// Notes: A new run supersedes any run still in flight.

// Package scroll animates a viewport's vertical offset toward an anchor.
//
// The Animator resolves the anchor through a Document, then either hands the
// target to a host NativeScroller or drives an eased Request one frame at a
// time through a FrameScheduler.
package scroll

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/framegrace/texelscroll/internal/effects"
)

const (
	// DefaultDuration is the length of an eased run.
	DefaultDuration = 1000 * time.Millisecond
	// DefaultHeaderOffset keeps targets clear of a fixed header.
	DefaultHeaderOffset = 80
)

// Result describes how an eased run ended.
type Result struct {
	Target    float64
	Position  float64
	Completed bool // false when cancelled or superseded
}

// Option configures an Animator.
type Option func(*Animator)

// WithDuration overrides DefaultDuration.
func WithDuration(d time.Duration) Option {
	return func(a *Animator) { a.duration = d }
}

// WithEasing overrides the default half-cosine curve.
func WithEasing(fn effects.EasingFunc) Option {
	return func(a *Animator) {
		if fn != nil {
			a.easing = fn
		}
	}
}

// WithScheduler sets the frame source for eased runs.
func WithScheduler(s FrameScheduler) Option {
	return func(a *Animator) { a.scheduler = s }
}

// WithNativeDisabled forces the eased path even when the viewport is a NativeScroller.
func WithNativeDisabled(disabled bool) Option {
	return func(a *Animator) { a.nativeDisabled = disabled }
}

// WithLogger sets the logger; verbose enables per-run logging.
func WithLogger(l *log.Logger, verbose bool) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
		a.verbose = verbose
	}
}

// WithOnDone registers a callback for the end of every eased run.
// It is invoked outside the animator lock, on the frame that ended the run
// or on the goroutine that cancelled it.
func WithOnDone(fn func(Result)) Option {
	return func(a *Animator) { a.onDone = fn }
}

// Animator scrolls a Viewport to anchors found in a Document.
type Animator struct {
	doc            Document
	viewport       Viewport
	scheduler      FrameScheduler
	duration       time.Duration
	easing         effects.EasingFunc
	nativeDisabled bool
	logger         *log.Logger
	verbose        bool
	onDone         func(Result)

	// owned is the scheduler NewAnimator created itself; Close stops it.
	owned *TickerScheduler

	mu     sync.Mutex
	active *run
}

type run struct {
	req *Request
}

// NewAnimator creates an animator. Without WithScheduler, eased runs use a
// TickerScheduler at DefaultFrameInterval owned by the animator; call Close
// when done with it. A scheduler passed in stays the caller's to close.
func NewAnimator(doc Document, viewport Viewport, opts ...Option) *Animator {
	a := &Animator{
		doc:      doc,
		viewport: viewport,
		duration: DefaultDuration,
		easing:   effects.EaseInOutSine,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.scheduler == nil {
		a.owned = NewTickerScheduler(DefaultFrameInterval)
		a.scheduler = a.owned
	}
	return a
}

// ScrollToElement scrolls so the element's top sits headerOffset below the
// viewport top. A missing element is a silent no-op.
func (a *Animator) ScrollToElement(ctx context.Context, elementID string, headerOffset float64) {
	top, ok := a.doc.ElementTop(elementID)
	if !ok {
		a.debugf("Scroll: no element %q, ignoring", elementID)
		return
	}
	a.ScrollTo(ctx, top-headerOffset)
}

// ScrollTo moves the viewport to an absolute offset using the selected strategy.
func (a *Animator) ScrollTo(ctx context.Context, target float64) {
	if ctx == nil {
		ctx = context.Background()
	}
	strategy := a.Strategy()
	a.debugf("Scroll: %s scroll to %.1f", strategy.Name(), target)
	strategy.ScrollTo(ctx, target)
}

// Strategy probes the viewport for native smooth scrolling.
func (a *Animator) Strategy() Strategy {
	if !a.nativeDisabled {
		if ns, ok := a.viewport.(NativeScroller); ok {
			return nativeReplacing{NativeStrategy{Scroller: ns}, a}
		}
	}
	return EasedStrategy{animator: a}
}

// Cancel stops the in-flight eased run, if any. The viewport keeps its
// current position. Reports whether a run was stopped.
func (a *Animator) Cancel() bool {
	a.mu.Lock()
	res, ok := a.supersedeLocked()
	a.mu.Unlock()
	if ok {
		a.debugf("Scroll: cancelled run toward %.1f", res.Target)
		a.notify(res)
	}
	return ok
}

// Close cancels any run in flight and stops the scheduler NewAnimator
// created, if any. Later eased runs never receive a frame.
func (a *Animator) Close() {
	a.Cancel()
	if a.owned != nil {
		a.owned.Close()
	}
}

// Active reports whether an eased run is in flight.
func (a *Animator) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active != nil
}

func (a *Animator) startRun(ctx context.Context, target float64) {
	a.mu.Lock()
	prev, replaced := a.supersedeLocked()
	req := NewRequest(a.viewport.ScrollPosition(), target, a.duration, a.easing)
	r := &run{req: req}
	a.active = r
	a.mu.Unlock()

	if replaced {
		a.debugf("Scroll: run toward %.1f replaced", prev.Target)
		a.notify(prev)
	}
	a.scheduler.RequestFrame(a.frameFunc(ctx, r))
}

func (a *Animator) frameFunc(ctx context.Context, r *run) FrameFunc {
	var step FrameFunc
	step = func(ts time.Duration) {
		a.mu.Lock()
		if a.active != r {
			a.mu.Unlock()
			return
		}
		if ctx.Err() != nil {
			res, _ := a.supersedeLocked()
			a.mu.Unlock()
			a.debugf("Scroll: run toward %.1f stopped: %v", res.Target, ctx.Err())
			a.notify(res)
			return
		}

		s := r.req.Advance(ts)
		a.viewport.SetScrollPosition(s.Position)
		if s.Done {
			a.active = nil
		}
		a.mu.Unlock()

		if s.Done {
			a.debugf("Scroll: reached %.1f after %v", s.Position, s.Elapsed)
			a.notify(Result{Target: r.req.Target, Position: s.Position, Completed: true})
			return
		}
		a.scheduler.RequestFrame(step)
	}
	return step
}

// supersedeLocked drops the active run. Must be called with mu held.
func (a *Animator) supersedeLocked() (Result, bool) {
	if a.active == nil {
		return Result{}, false
	}
	res := Result{
		Target:   a.active.req.Target,
		Position: a.viewport.ScrollPosition(),
	}
	a.active = nil
	return res, true
}

func (a *Animator) notify(res Result) {
	if a.onDone != nil {
		a.onDone(res)
	}
}

func (a *Animator) debugf(format string, args ...interface{}) {
	if a.verbose && a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

// nativeReplacing cancels any eased run before handing off to the host.
type nativeReplacing struct {
	NativeStrategy
	animator *Animator
}

func (s nativeReplacing) ScrollTo(ctx context.Context, target float64) {
	s.animator.Cancel()
	s.NativeStrategy.ScrollTo(ctx, target)
}
