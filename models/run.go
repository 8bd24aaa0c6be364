// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RunState names a station of the setup state machine. States are strictly
// sequential; a failed guard halts the run in the failure state derived via
// [RunState.Failed] and nothing is rolled back.
type RunState string

// Setup run states, in execution order.
const (
	StateInit               RunState = "Init"
	StateFilesChecked       RunState = "FilesChecked"
	StateConfigLoaded       RunState = "ConfigLoaded"
	StateTokenVerified      RunState = "TokenVerified"
	StateRepoProvisioned    RunState = "RepoProvisioned"
	StateFilesUploaded      RunState = "FilesUploaded"
	StateSecretsProvisioned RunState = "SecretsProvisioned"
	StateDone               RunState = "Done"
)

// Failed returns the terminal failure state named after the state the run
// halted in, e.g. "Init.Failed" when the very first guard rejects.
func (s RunState) Failed() RunState {
	return s + ".Failed"
}

// ProvisionOutcome reports how the repository resource was satisfied.
type ProvisionOutcome string

const (
	// OutcomeCreated means the repository did not exist and was created.
	OutcomeCreated ProvisionOutcome = "created"

	// OutcomeReused means the repository already existed and was left
	// untouched, keeping re-runs safe.
	OutcomeReused ProvisionOutcome = "reused"
)

// Credentials holds the bearer token and the identity derived from it.
// Both are immutable for the lifetime of a run.
type Credentials struct {
	// Token is the opaque bearer credential. Never logged.
	Token string

	// Login is the account handle the token authenticates as.
	Login string
}

// RunContext is the immutable value threaded through every component of a
// setup run. It is constructed once, after the token has been verified, and
// never mutated afterwards.
type RunContext struct {
	// Credentials is the verified bearer token and derived identity.
	Credentials Credentials

	// Repo identifies the target repository.
	Repo RepositoryRef

	// Artifacts are the tracked workload files, loaded before any
	// network call was made.
	Artifacts []Artifact

	// Secrets maps secret slot names to their plaintext values. Values
	// exist only in memory as sealing input; they are never logged,
	// journalled, or sent unencrypted.
	Secrets map[string]string
}

// FileResult records the outcome of a single tracked-file upload.
type FileResult struct {
	// Path is the repository-relative path of the uploaded file.
	Path string

	// RevisionMarker is the prior content marker discovered by the probe,
	// empty when the path had no prior content.
	RevisionMarker string

	// OK reports whether the content write succeeded.
	OK bool
}

// SecretResult records the outcome of a single secret slot write.
// Slot failures are isolated: one failing slot never blocks the others.
type SecretResult struct {
	// Name is the secret slot name.
	Name string

	// OK reports whether the sealed value was accepted (201 or 204).
	OK bool

	// Err is the failure description for the journal and final report.
	// Never contains the secret value.
	Err string
}

// RunReport aggregates everything a finished (or halted) run produced.
// It backs both the console summary and the run journal.
type RunReport struct {
	// RunID uniquely identifies the run in the journal.
	RunID string

	// Repo is the target repository of the run.
	Repo RepositoryRef

	// Outcome is how the repository resource was satisfied; empty when
	// the run halted before provisioning.
	Outcome ProvisionOutcome

	// State is the state the run finished in ([StateDone] on success,
	// a ".Failed" state otherwise).
	State RunState

	// Files lists per-file upload results in upload order.
	Files []FileResult

	// Secrets lists per-slot secret write results.
	Secrets []SecretResult

	// StartedAt and FinishedAt bound the run for the journal.
	StartedAt  time.Time
	FinishedAt time.Time
}

// Success reports whether the run reached [StateDone] with every file and
// every secret written. Partial secret failure makes the run unsuccessful
// even though the remaining slots were still provisioned.
func (r RunReport) Success() bool {
	if r.State != StateDone {
		return false
	}
	for _, f := range r.Files {
		if !f.OK {
			return false
		}
	}
	for _, s := range r.Secrets {
		if !s.OK {
			return false
		}
	}
	return true
}
