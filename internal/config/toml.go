// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// parseTOML reads and decodes the TOML configuration file at path into a
// fresh [StructuredConfig]. Unknown keys are rejected so a typo in the file
// fails loudly instead of being silently ignored.
func parseTOML(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadingTOMLFile, path, err)
	}

	cfg := &StructuredConfig{}
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParsingTOMLFile, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %q", ErrParsingTOMLFile, path, undecoded[0].String())
	}

	return cfg, nil
}
