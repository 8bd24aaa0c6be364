// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the provisioning flows of a setup run on top
// of the transport adapter: repository create-or-reuse, tracked-file
// upload, and secret sealing.
package service

import (
	"context"

	"github.com/MKhiriev/go-stream-setup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// RepoProvisioner satisfies the "repository exists" requirement
// idempotently: an existing repository is reused untouched, a missing one
// is created and awaited until it answers probes.
type RepoProvisioner interface {
	Ensure(ctx context.Context, ref models.RepositoryRef) (models.ProvisionOutcome, error)
}

// FileSyncService uploads the tracked workload files into the repository,
// overwriting prior revisions via the probe-then-write protocol.
type FileSyncService interface {
	Upload(ctx context.Context, ref models.RepositoryRef, artifacts []models.Artifact) ([]models.FileResult, error)
}

// SecretProvisioner seals the configuration values against the repository
// public key and stores them as Actions secrets. Slot failures are
// isolated, but an unusable public key (unfetchable or malformed) aborts
// the whole step since every slot depends on it.
type SecretProvisioner interface {
	ProvisionAll(ctx context.Context, ref models.RepositoryRef, secrets map[string]string) ([]models.SecretResult, error)
}
