// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Configuration store for texelscroll.
// Usage: System() for reads, Set/Save for edits, Watch for hot reload.
// Notes: File access goes through an afero.Fs so tools and tests can swap it.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

const configName = "texelscroll.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	fs      afero.Fs = afero.NewOsFs()
	system  Config
	loadErr error
)

// SetFs replaces the filesystem used by the store and drops the cached config.
func SetFs(f afero.Fs) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		f = afero.NewOsFs()
	}
	fs = f
	once = sync.Once{}
	system = nil
	loadErr = nil
}

// SetPath overrides the config file location and drops the cached config.
func SetPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	pathOverride = path
	once = sync.Once{}
	system = nil
	loadErr = nil
}

// Err returns the most recent load error.
func Err() error {
	ensureLoaded()
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns a copy of the current configuration.
func System() Config {
	ensureLoaded()
	mu.RLock()
	defer mu.RUnlock()
	return Clone(system)
}

// Reload re-reads the configuration file.
func Reload() error {
	ensureLoaded()
	mu.Lock()
	defer mu.Unlock()
	loadErr = loadLocked()
	return loadErr
}

// Save persists the current configuration to disk.
func Save() error {
	ensureLoaded()
	mu.Lock()
	defer mu.Unlock()
	path, err := Path()
	if err != nil {
		return err
	}
	return writeConfig(path, system)
}

// Set replaces the in-memory configuration. Missing keys get defaults.
func Set(cfg Config) {
	ensureLoaded()
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = make(Config)
	}
	system = Clone(cfg)
	applyDefaults(system)
}

func ensureLoaded() {
	mu.RLock()
	o := &once
	mu.RUnlock()
	o.Do(initStore)
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	system = make(Config)
	loadErr = loadLocked()
}

func readConfig(path string) (Config, bool, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0644)
}
