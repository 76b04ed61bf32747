// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Loads and caches parsed defaults from the embedded JSON file.
// The embedded JSON in defaults/ is the single source of truth.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/texelscroll/defaults"
)

var (
	embeddedOnce sync.Once
	embedded     Config
	embeddedErr  error
)

func embeddedDefaults() (Config, error) {
	embeddedOnce.Do(func() {
		data, err := defaults.Config()
		if err != nil {
			embeddedErr = err
			return
		}
		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			embeddedErr = err
			return
		}
		embedded = cfg
	})
	return embedded, embeddedErr
}

// defaultConfig returns a copy of the embedded defaults, or nil if they
// cannot be parsed.
func defaultConfig() Config {
	cfg, err := embeddedDefaults()
	if err != nil || cfg == nil {
		return nil
	}
	return Clone(cfg)
}
