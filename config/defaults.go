// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values applied to every loaded configuration.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults(SectionScroll, Section{
		"duration_ms":       1000,
		"header_offset":     80,
		"row_height_px":     40,
		"native_smooth":     false,
		"easing":            "sine",
		"frame_interval_ms": 16,
	})
	cfg.RegisterDefaults(SectionLanding, Section{
		"user":         "",
		"verbose_logs": false,
	})
}
