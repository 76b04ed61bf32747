// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Typed, validated views over the scroll and landing sections.

package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/framegrace/texelscroll/internal/effects"
)

const (
	SectionScroll  = "scroll"
	SectionLanding = "landing"
)

// ErrInvalidSettings wraps every validation failure from Scroll.
var ErrInvalidSettings = errors.New("config: invalid settings")

// ScrollSettings configures the scroll animator.
type ScrollSettings struct {
	DurationMs      int     `json:"duration_ms" validate:"min=1,max=10000"`
	HeaderOffset    float64 `json:"header_offset" validate:"gte=0"`
	RowHeightPx     float64 `json:"row_height_px" validate:"gt=0"`
	NativeSmooth    bool    `json:"native_smooth"`
	Easing          string  `json:"easing" validate:"required,easing"`
	FrameIntervalMs int     `json:"frame_interval_ms" validate:"min=1,max=1000"`
}

// Duration is the eased run length.
func (s ScrollSettings) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// FrameInterval is the pacing between animation frames.
func (s ScrollSettings) FrameInterval() time.Duration {
	return time.Duration(s.FrameIntervalMs) * time.Millisecond
}

// HeaderRows converts the pixel header offset into terminal rows.
func (s ScrollSettings) HeaderRows() float64 {
	return s.HeaderOffset / s.RowHeightPx
}

// EasingFunc resolves the configured curve, falling back to the half-cosine.
func (s ScrollSettings) EasingFunc() effects.EasingFunc {
	if fn, ok := effects.EasingByName(s.Easing); ok {
		return fn
	}
	return effects.EaseInOutSine
}

// LandingSettings configures the landing page host.
type LandingSettings struct {
	User        string `json:"user"`
	VerboseLogs bool   `json:"verbose_logs"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
			_, ok := effects.EasingByName(fl.Field().String())
			return ok
		})
	})
	return validate
}

// Scroll reads and validates the scroll section.
func (c Config) Scroll() (ScrollSettings, error) {
	s := ScrollSettings{
		DurationMs:      c.GetInt(SectionScroll, "duration_ms", 1000),
		HeaderOffset:    c.GetFloat(SectionScroll, "header_offset", 80),
		RowHeightPx:     c.GetFloat(SectionScroll, "row_height_px", 40),
		NativeSmooth:    c.GetBool(SectionScroll, "native_smooth", false),
		Easing:          c.GetString(SectionScroll, "easing", "sine"),
		FrameIntervalMs: c.GetInt(SectionScroll, "frame_interval_ms", 16),
	}
	return s, s.Validate()
}

// Validate checks the settings against their field rules. Callers that
// change settings after Scroll, such as flag overrides, must validate again.
func (s ScrollSettings) Validate() error {
	if err := settingsValidator().Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Landing reads the landing section.
func (c Config) Landing() LandingSettings {
	return LandingSettings{
		User:        c.GetString(SectionLanding, "user", ""),
		VerboseLogs: c.GetBool(SectionLanding, "verbose_logs", false),
	}
}
