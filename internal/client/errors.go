// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrMissingRunInput is returned by the config guard when one of the
	// six required run inputs is empty.
	ErrMissingRunInput = errors.New("missing run input")

	// ErrMissingArtifacts is returned by the files guard when tracked
	// workload files are absent from the working directory.
	ErrMissingArtifacts = errors.New("missing tracked files")
)
