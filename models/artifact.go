// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Artifact is a tracked workload file loaded from the local working
// directory and destined for the target repository.
type Artifact struct {
	// Path is the repository-relative path the file is uploaded to,
	// identical to its local path.
	Path string

	// Content is the raw file content. It is base64-encoded only at the
	// transport boundary.
	Content []byte
}
