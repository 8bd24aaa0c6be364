// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the GitHub
// REST API.
//
// The primary abstraction is [GitHubAdapter], which decouples the service
// layer from HTTP specifics. The shipped implementation
// ([NewGitHubAdapter]) is a thin resty-based client: it attaches the bearer
// credential and API-version accept header to every call, enforces the
// configured request timeout, and never retries or sleeps.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can branch with [errors.Is] (e.g.
// [ErrNotFound] for the create-vs-reuse decision, [ErrConflict] for a
// rejected conditional content write). Interpreting a status is always the
// caller's job; the adapter only makes the status legible.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stream-setup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/github_adapter_mock.go -package=mock

// GitHubAdapter defines the provider REST surface used by a setup run.
// Implementations are responsible for serialisation, authentication header
// management, and mapping HTTP statuses to the sentinel values defined in
// this package. One method call is exactly one network round trip.
type GitHubAdapter interface {
	// VerifyToken resolves the identity behind the bearer token via
	// GET /user. Returns [ErrUnauthorized] (wrapped) when the token is
	// rejected.
	VerifyToken(ctx context.Context) (models.Account, error)

	// GetRepository probes GET /repos/{owner}/{name}. Returns
	// [ErrNotFound] (wrapped) when the repository does not exist; the
	// caller decides whether that means "create it".
	GetRepository(ctx context.Context, ref models.RepositoryRef) (models.Repository, error)

	// CreateRepository issues POST /user/repos with the given creation
	// body and returns the created repository resource.
	CreateRepository(ctx context.Context, req models.CreateRepositoryRequest) (models.Repository, error)

	// GetContent probes GET /repos/{owner}/{name}/contents/{path} for the
	// current revision marker of path. Returns [ErrNotFound] (wrapped)
	// when the path has no prior content.
	GetContent(ctx context.Context, ref models.RepositoryRef, path string) (models.RepoContent, error)

	// PutContent writes file content via
	// PUT /repos/{owner}/{name}/contents/{path}. Returns [ErrConflict]
	// (wrapped) when the revision marker in req does not match the
	// current remote content.
	PutContent(ctx context.Context, ref models.RepositoryRef, path string, req models.ContentWriteRequest) error

	// GetActionsPublicKey fetches the repository encryption key via
	// GET /repos/{owner}/{name}/actions/secrets/public-key.
	GetActionsPublicKey(ctx context.Context, ref models.RepositoryRef) (models.ActionsPublicKey, error)

	// PutActionsSecret stores a sealed value under the named secret slot
	// via PUT /repos/{owner}/{name}/actions/secrets/{name}.
	PutActionsSecret(ctx context.Context, ref models.RepositoryRef, name string, req models.SecretWriteRequest) error
}
