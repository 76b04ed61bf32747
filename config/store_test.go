// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/afero"
)

const testPath = "/cfg/texelscroll.json"

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	SetFs(mem)
	SetPath(testPath)
	t.Cleanup(func() {
		SetPath("")
		SetFs(nil)
	})
	return mem
}

func TestDefaultsWrittenOnFirstLoad(t *testing.T) {
	mem := useMemFs(t)

	cfg := System()
	if got := cfg.GetInt(SectionScroll, "duration_ms", 0); got != 1000 {
		t.Fatalf("duration_ms = %d, want 1000", got)
	}
	if Err() != nil {
		t.Fatalf("unexpected load error: %v", Err())
	}

	data, err := afero.ReadFile(mem, testPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if disk.Section(SectionScroll) == nil || disk.Section(SectionLanding) == nil {
		t.Fatalf("expected scroll and landing sections on disk, got %v", disk)
	}
}

func TestExistingValuesSurviveDefaults(t *testing.T) {
	mem := useMemFs(t)
	if err := afero.WriteFile(mem, testPath, []byte(`{"scroll":{"duration_ms":250}}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := System()
	if got := cfg.GetInt(SectionScroll, "duration_ms", 0); got != 250 {
		t.Fatalf("duration_ms = %d, want 250", got)
	}
	if got := cfg.GetFloat(SectionScroll, "header_offset", 0); got != 80 {
		t.Fatalf("header_offset default = %v, want 80", got)
	}
}

func TestMalformedFileFallsBackToDefaults(t *testing.T) {
	mem := useMemFs(t)
	if err := afero.WriteFile(mem, testPath, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := System()
	if Err() == nil {
		t.Fatalf("expected a load error for malformed JSON")
	}
	if got := cfg.GetString(SectionScroll, "easing", ""); got != "sine" {
		t.Fatalf("easing = %q, want default sine", got)
	}
	data, _ := afero.ReadFile(mem, testPath)
	if string(data) != `{not json` {
		t.Fatalf("malformed file should not be overwritten, got %s", data)
	}
}

func TestSaveWritesUpdates(t *testing.T) {
	mem := useMemFs(t)

	Set(Config{SectionLanding: Section{"user": "nimal"}})
	if err := Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := afero.ReadFile(mem, testPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := disk.Landing().User; got != "nimal" {
		t.Fatalf("user = %q, want nimal", got)
	}
	if got := disk.GetInt(SectionScroll, "frame_interval_ms", 0); got != 16 {
		t.Fatalf("Set should fill defaults, frame_interval_ms = %d", got)
	}
}

func TestSystemReturnsCopy(t *testing.T) {
	useMemFs(t)

	cfg := System()
	cfg.Section(SectionScroll)["duration_ms"] = 5
	if got := System().GetInt(SectionScroll, "duration_ms", 0); got != 1000 {
		t.Fatalf("mutating a returned config leaked into the store: %d", got)
	}
}

func TestGettersCoerceTypes(t *testing.T) {
	cfg := Config{
		"s": map[string]interface{}{
			"num":     json.Number("12"),
			"str":     "3.5",
			"flag":    "true",
			"flagnum": 0.0,
			"wrong":   []int{1},
		},
	}
	if got := cfg.GetInt("s", "num", 0); got != 12 {
		t.Fatalf("GetInt json.Number = %d", got)
	}
	if got := cfg.GetFloat("s", "str", 0); got != 3.5 {
		t.Fatalf("GetFloat string = %v", got)
	}
	if !cfg.GetBool("s", "flag", false) {
		t.Fatalf("GetBool string true")
	}
	if cfg.GetBool("s", "flagnum", true) {
		t.Fatalf("GetBool 0.0 should be false")
	}
	if got := cfg.GetInt("s", "wrong", 7); got != 7 {
		t.Fatalf("GetInt wrong type = %d, want default", got)
	}
	if got := cfg.GetString("missing", "k", "d"); got != "d" {
		t.Fatalf("GetString missing section = %q", got)
	}
}

func TestScrollSettingsValidation(t *testing.T) {
	cases := []struct {
		name    string
		section Section
		wantErr bool
	}{
		{"defaults", Section{}, false},
		{"zero duration", Section{"duration_ms": 0}, true},
		{"negative header", Section{"header_offset": -1}, true},
		{"unknown easing", Section{"easing": "bounce"}, true},
		{"zero row height", Section{"row_height_px": 0}, true},
		{"slow frames", Section{"frame_interval_ms": 5000}, true},
		{"cubic", Section{"easing": "in-out-cubic", "duration_ms": 400}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{SectionScroll: tc.section}
			_, err := cfg.Scroll()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidSettings) {
					t.Fatalf("expected ErrInvalidSettings, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestScrollSettingsValidateAfterChange(t *testing.T) {
	s, err := Config{}.Scroll()
	if err != nil {
		t.Fatalf("Scroll: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	s.DurationMs = -5000
	if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("negative duration: err = %v", err)
	}
	s.DurationMs = 3600000
	if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("hour-long duration: err = %v", err)
	}
}

func TestScrollSettingsDerivedValues(t *testing.T) {
	s, err := Config{}.Scroll()
	if err != nil {
		t.Fatalf("Scroll: %v", err)
	}
	if s.Duration().Milliseconds() != 1000 {
		t.Fatalf("Duration = %v", s.Duration())
	}
	if s.HeaderRows() != 2 {
		t.Fatalf("HeaderRows = %v, want 2", s.HeaderRows())
	}
	if s.EasingFunc()(1) != 1 {
		t.Fatalf("EasingFunc(1) != 1")
	}
}
