// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelscroll configuration.

package config

import (
	"os"
	"path/filepath"
)

var pathOverride string

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelscroll"), nil
}

// Path returns the location of texelscroll.json.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}

// LogPath returns the default log file location next to the config.
func LogPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "texelscroll.log"), nil
}
