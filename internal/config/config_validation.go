// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate checks that the final merged [StructuredConfig] satisfies the
// structural invariants required before the application can even start.
//
// The six run inputs (stream values, token, repository name) are NOT
// validated here: their presence is the ConfigLoaded guard of the setup
// state machine, so a missing token halts the run in a named state rather
// than during config assembly.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(cfg.GitHub.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidGitHubConfigs
	}

	if cfg.GitHub.RequestTimeout <= 0 {
		return ErrInvalidGitHubConfigs
	}

	if cfg.Journal.Path == "" {
		return ErrInvalidJournalConfigs
	}

	return nil
}
