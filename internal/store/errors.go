// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the artifact store and run journal. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrMissingArtifacts is returned by LoadAll when one or more tracked
	// files are absent; Check should have been consulted first.
	ErrMissingArtifacts = errors.New("tracked files are missing")

	// ErrInvalidWorkflow is returned when a workflow definition does not
	// parse as YAML and would be pushed broken.
	ErrInvalidWorkflow = errors.New("workflow file is not valid yaml")

	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query for the journal fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the journal database
	// cannot start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrExecutingStatement is returned when executing a journal INSERT
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrCommitingTransaction is returned when committing the journal
	// transaction fails; the transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a journal result row fails.
	ErrScanningRow = errors.New("failed to scan journal row")
)
