// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/easing.go
// Summary: Easing curves shared by the scroll animator and page timelines.
// Notes: Every curve maps [0,1] onto [0,1] with f(0)=0 and f(1)=1.

package effects

import (
	"math"
	"sort"
	"strings"
)

// EasingFunc maps linear progress in [0,1] to eased progress in [0,1].
type EasingFunc func(progress float64) float64

var (
	// EaseLinear - No easing, constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInOutSine - Half cosine wave. Default for anchor scrolling.
	EaseInOutSine EasingFunc = func(t float64) float64 {
		return 0.5 - math.Cos(t*math.Pi)/2
	}

	// EaseSmoothstep - Smooth S-curve, accelerates at start, decelerates at end
	EaseSmoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseSmootherstep - Even smoother S-curve with zero derivatives at 0 and 1
	EaseSmootherstep EasingFunc = func(t float64) float64 {
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	}

	EaseInQuad EasingFunc = func(t float64) float64 {
		return t * t
	}

	EaseOutQuad EasingFunc = func(t float64) float64 {
		return t * (2.0 - t)
	}

	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2.0 * t * t
		}
		return -1.0 + (4.0-2.0*t)*t
	}

	EaseOutCubic EasingFunc = func(t float64) float64 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}
)

var easingNames = map[string]EasingFunc{
	"linear":       EaseLinear,
	"sine":         EaseInOutSine,
	"smoothstep":   EaseSmoothstep,
	"smootherstep": EaseSmootherstep,
	"in-quad":      EaseInQuad,
	"out-quad":     EaseOutQuad,
	"in-out-quad":  EaseInOutQuad,
	"out-cubic":    EaseOutCubic,
	"in-out-cubic": EaseInOutCubic,
}

// EasingByName resolves a config name such as "sine" or "smoothstep".
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easingNames[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EasingNames lists the names accepted by EasingByName.
func EasingNames() []string {
	names := make([]string, 0, len(easingNames))
	for name := range easingNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
