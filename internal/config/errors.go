// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors returned while loading and validating configuration. All of them
// halt the run before any network call is made.
var (
	// ErrSetupFileNotFound indicates the legacy setup file does not exist.
	// The builder treats this as non-fatal: the file is only one of the
	// configuration sources.
	ErrSetupFileNotFound = errors.New("setup file not found")

	// ErrInvalidSetupFile indicates the setup file exists but does not
	// carry the six required non-empty lines.
	ErrInvalidSetupFile = errors.New("invalid setup file")

	// ErrReadingTOMLFile indicates the TOML configuration file could not
	// be read from disk.
	ErrReadingTOMLFile = errors.New("error reading toml config file")

	// ErrParsingTOMLFile indicates the TOML configuration file is
	// syntactically invalid or carries unknown keys.
	ErrParsingTOMLFile = errors.New("error parsing toml config file")

	// ErrInvalidGitHubConfigs indicates invalid provider client settings
	// (for example, an unparseable API base URL or zero request timeout).
	ErrInvalidGitHubConfigs = errors.New("invalid github configuration")

	// ErrInvalidJournalConfigs indicates invalid run-journal settings
	// (for example, an empty journal path).
	ErrInvalidJournalConfigs = errors.New("invalid journal configuration")
)
