// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags == nil {
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withTOML() *configBuilder {
	var tomlPath string

	for _, cfg := range b.configs {
		if cfg.TOMLFilePath != "" {
			tomlPath = cfg.TOMLFilePath
		}
	}

	if tomlPath != "" {
		tomlCfg, err := parseTOML(tomlPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, tomlCfg)
	}

	return b
}

func (b *configBuilder) withSetupFile() *configBuilder {
	setupPath := defaultSetupFile
	for _, cfg := range b.configs {
		if cfg.SetupFilePath != "" {
			setupPath = cfg.SetupFilePath
		}
	}

	setupCfg, err := parseSetupFile(setupPath)
	if err != nil {
		// The legacy setup file is optional when every value arrives from
		// another source; only a malformed file is fatal.
		if errors.Is(err, ErrSetupFileNotFound) {
			return b
		}
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, setupCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		GitHub: GitHub{
			APIBaseURL:     "https://api.github.com",
			RequestTimeout: Duration(30 * time.Second),
		},
		Journal: Journal{
			Path: "stream_setup_runs.db",
		},
		SetupFilePath: defaultSetupFile,
	})
	return b
}
