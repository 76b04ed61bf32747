// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/watch.go
// Summary: Hot reload of texelscroll.json.
// Notes: Watches the parent directory since editors replace files by rename.
// Only meaningful when the store uses the OS filesystem.

package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file changes and passes the new
// config to onChange. It returns once the watcher is running; the watcher
// stops when ctx is done.
func Watch(ctx context.Context, onChange func(Config)) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := Reload(); err != nil {
					log.Printf("Config: Reload after %s failed: %v", event.Op, err)
					continue
				}
				if onChange != nil {
					onChange(System())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config: Watcher error: %v", err)
			}
		}
	}()
	return nil
}
