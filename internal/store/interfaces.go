// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the local persistence of go-stream-setup: the
// artifact store that checks and loads the tracked workload files from the
// working directory, and the SQLite run journal that keeps provisioning
// runs inspectable after the fact.
//
// The journal never stores secret values, only names, paths, statuses and
// timestamps.
package store

import (
	"context"

	"github.com/MKhiriev/go-stream-setup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ArtifactStore checks for and loads the tracked workload files.
type ArtifactStore interface {
	// Check reports every tracked file missing from the working
	// directory. An empty slice means all files are present.
	Check() ([]string, error)

	// LoadAll reads every tracked file into memory, validating workflow
	// definitions as YAML before they can be pushed broken. Order follows
	// the tracked list.
	LoadAll() ([]models.Artifact, error)
}

// RunJournal persists provisioning run outcomes locally.
// Journal failures are reported as warnings by callers; they never fail
// the run itself.
type RunJournal interface {
	// RecordRun stores the report of a finished (or halted) run together
	// with its per-file and per-secret results, atomically.
	RecordRun(ctx context.Context, report models.RunReport) error

	// RecentRuns returns up to limit run reports, newest first, without
	// per-item detail rows.
	RecentRuns(ctx context.Context, limit int) ([]models.RunReport, error)

	// Close releases the underlying database handle.
	Close() error
}
