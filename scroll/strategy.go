// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/strategy.go
// Summary: The two ways a scroll target is reached: host-native or eased frames.

package scroll

import "context"

// Strategy moves the viewport to an absolute target offset.
type Strategy interface {
	Name() string
	ScrollTo(ctx context.Context, target float64)
}

// NativeStrategy hands the target to the host. Nothing is observed afterwards.
type NativeStrategy struct {
	Scroller NativeScroller
}

func (s NativeStrategy) Name() string { return "native" }

func (s NativeStrategy) ScrollTo(_ context.Context, target float64) {
	s.Scroller.SmoothScrollTo(target)
}

// EasedStrategy drives the viewport frame by frame through an Animator.
type EasedStrategy struct {
	animator *Animator
}

func (s EasedStrategy) Name() string { return "eased" }

func (s EasedStrategy) ScrollTo(ctx context.Context, target float64) {
	s.animator.startRun(ctx, target)
}
