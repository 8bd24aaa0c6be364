// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Duration wraps time.Duration so that human-readable values like "30s" can
// be decoded from every configuration source: caarlos0/env and BurntSushi/toml
// both honour encoding.TextUnmarshaler.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped value as a standard time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the human-readable form, e.g. "30s".
func (d Duration) String() string {
	return time.Duration(d).String()
}

// StructuredConfig is the top-level configuration container for
// go-stream-setup. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// TOML file, and the legacy six-line setup file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - toml: key name inside the optional TOML configuration file.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_" toml:"app"`

	// GitHub holds provider credentials and API client settings.
	GitHub GitHub `envPrefix:"GITHUB_" toml:"github"`

	// Stream holds the four streaming configuration values that become
	// encrypted Actions secrets on the remote side.
	Stream Stream `envPrefix:"STREAM_" toml:"stream"`

	// Journal holds the local run-journal settings.
	Journal Journal `envPrefix:"JOURNAL_" toml:"journal"`

	// SetupFilePath is the path to the legacy six-line setup file
	// (stream key, video URL, quality, aspect ratio, token, repo name).
	// Env: SETUP_FILE
	SetupFilePath string `env:"SETUP_FILE" toml:"-"`

	// TOMLFilePath is the optional path to a TOML configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Env: CONFIG
	TOMLFilePath string `env:"CONFIG" toml:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running binary.
	// Env: APP_VERSION
	Version string `env:"VERSION" toml:"version"`
}

// GitHub holds provider credentials and outbound API client settings.
type GitHub struct {
	// Token is the personal access token used as the bearer credential on
	// every API call. Must be kept confidential and is never logged.
	// Env: GITHUB_TOKEN
	Token string `env:"TOKEN" toml:"token"`

	// RepoName is the name of the repository to create or reuse.
	// Env: GITHUB_REPO
	RepoName string `env:"REPO" toml:"repo"`

	// APIBaseURL is the base URL of the provider REST API.
	// Defaults to https://api.github.com.
	// Env: GITHUB_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL" toml:"api_base_url"`

	// RequestTimeout bounds every outbound request so a hung call cannot
	// stall the run indefinitely (e.g. "30s", "1m").
	// Env: GITHUB_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" toml:"request_timeout"`
}

// Stream holds the four values provisioned as Actions secrets.
// All four are write-only from the provider's perspective: they leave the
// process only as sealed-box ciphertext.
type Stream struct {
	// Key is the streaming ingest key. Never logged.
	// Env: STREAM_KEY
	Key string `env:"KEY" toml:"key"`

	// VideoURL is the source media URL.
	// Env: STREAM_VIDEO_URL
	VideoURL string `env:"VIDEO_URL" toml:"video_url"`

	// Quality is the quality label (e.g. "1080p").
	// Env: STREAM_QUALITY
	Quality string `env:"QUALITY" toml:"quality"`

	// AspectRatio is the aspect-ratio label (e.g. "16:9").
	// Env: STREAM_ASPECT_RATIO
	AspectRatio string `env:"ASPECT_RATIO" toml:"aspect_ratio"`
}

// Journal holds settings for the local SQLite run journal.
type Journal struct {
	// Path is the SQLite database file the journal writes to.
	// Defaults to "stream_setup_runs.db" next to the working directory.
	// Env: JOURNAL_PATH
	Path string `env:"PATH" toml:"path"`
}

// GetSetupConfig loads, merges, and validates the application configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (pre-parsed by the CLI layer)
//  3. TOML file (path resolved from sources 1 and 2)
//  4. Legacy six-line setup file
//  5. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetSetupConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withTOML().
		withSetupFile().
		withDefaults().
		build()
}
