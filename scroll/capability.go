// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/capability.go
// Summary: Host capabilities consumed by the scroll animator.
// Notes: Hosts implement these against their own surface (a tcell page, a test fake).

package scroll

import "time"

// Document resolves anchor identifiers to their top offset in scroll units.
type Document interface {
	// ElementTop returns the element's top offset and whether it exists.
	ElementTop(id string) (float64, bool)
}

// Viewport exposes the single vertical scroll position being animated.
type Viewport interface {
	ScrollPosition() float64
	SetScrollPosition(pos float64)
}

// NativeScroller is implemented by viewports whose host animates scrolling
// on its own. It is detected by type assertion on the Viewport.
type NativeScroller interface {
	SmoothScrollTo(target float64)
}

// FrameFunc receives a monotonic timestamp measured from the scheduler origin.
type FrameFunc func(ts time.Duration)

// FrameScheduler runs fn once, asynchronously, on the next frame.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc)
}
