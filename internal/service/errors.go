// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrRepoNotReady is returned when a freshly created repository still
	// does not answer probes after the readiness poll is exhausted.
	ErrRepoNotReady = errors.New("created repository not ready")

	// ErrUploadConflict is returned when a content write is rejected
	// because the revision marker went stale between probe and write.
	ErrUploadConflict = errors.New("content write conflict")

	// ErrPublicKeyUnavailable is returned when the repository encryption
	// key cannot be fetched, or turns out malformed when first used. The
	// key is shared by every slot, so no secret can be sealed without it.
	ErrPublicKeyUnavailable = errors.New("actions public key unavailable")
)
