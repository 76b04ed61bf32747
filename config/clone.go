// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Copy helpers so callers never share section maps with the store.

package config

// Clone returns a copy of the config with every section copied.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, raw := range cfg {
		if section := asSection(raw); section != nil {
			clone[name] = cloneSection(section)
			continue
		}
		clone[name] = raw
	}
	return clone
}

func cloneSection(s Section) Section {
	out := make(Section, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}

func asSection(raw interface{}) Section {
	switch v := raw.(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}
