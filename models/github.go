// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is the identity resolved from the bearer token via GET /user.
type Account struct {
	// Login is the GitHub account handle owning the target repository.
	Login string `json:"login"`
}

// RepositoryRef identifies the single target repository of a setup run.
// It is resolved once per run and reused by every subsequent operation.
type RepositoryRef struct {
	// Owner is the account handle derived from the verified token.
	Owner string `json:"owner"`

	// Name is the repository name supplied by the setup configuration.
	Name string `json:"name"`
}

// FullName returns the canonical "owner/name" form used in logs and the
// run journal.
func (r RepositoryRef) FullName() string {
	return r.Owner + "/" + r.Name
}

// Repository is the subset of the GitHub repository resource the setup
// flow inspects.
type Repository struct {
	// Name is the short repository name.
	Name string `json:"name"`

	// FullName is the "owner/name" identifier reported by the API.
	FullName string `json:"full_name"`

	// DefaultBranch is the branch the repository was initialised with.
	DefaultBranch string `json:"default_branch"`

	// Private reports the repository visibility.
	Private bool `json:"private"`
}

// CreateRepositoryRequest is the body of POST /user/repos.
type CreateRepositoryRequest struct {
	// Name is the repository to create.
	Name string `json:"name"`

	// Private is always false: the streaming workload runs on public
	// Actions minutes.
	Private bool `json:"private"`

	// Description is the fixed repository description.
	Description string `json:"description"`

	// AutoInit asks the provider to create the default branch with an
	// initial commit, so content writes have a branch to land on.
	AutoInit bool `json:"auto_init"`
}

// RepoContent is the subset of GET /repos/{owner}/{repo}/contents/{path}
// needed to overwrite existing content.
type RepoContent struct {
	// Path is the repository-relative file path.
	Path string `json:"path"`

	// SHA is the revision marker of the current blob. It must be echoed
	// back on overwrite or the provider rejects the write as a conflict.
	SHA string `json:"sha"`
}

// ContentWriteRequest is the body of PUT /repos/{owner}/{repo}/contents/{path}.
type ContentWriteRequest struct {
	// Message is the commit message for the content write.
	Message string `json:"message"`

	// Content is the base64-encoded file content.
	Content string `json:"content"`

	// Branch is the target branch; the setup flow always writes to "main".
	Branch string `json:"branch"`

	// SHA is the revision marker discovered by the preceding probe.
	// It must be omitted when the path had no prior content.
	SHA string `json:"sha,omitempty"`
}

// ActionsPublicKey is the repository public key returned by
// GET /repos/{owner}/{repo}/actions/secrets/public-key. It is fetched at
// most once per run and reused for every secret sealed in that run.
type ActionsPublicKey struct {
	// KeyID identifies the key pair on the provider side and is echoed
	// back with every sealed value.
	KeyID string `json:"key_id"`

	// Key is the base64-encoded 32-byte Curve25519 public key.
	Key string `json:"key"`
}

// SecretWriteRequest is the body of
// PUT /repos/{owner}/{repo}/actions/secrets/{name}. It carries only the
// sealed value; plaintext never appears on the wire.
type SecretWriteRequest struct {
	// EncryptedValue is the base64-encoded sealed-box ciphertext.
	EncryptedValue string `json:"encrypted_value"`

	// KeyID is the identifier of the public key the value was sealed with.
	KeyID string `json:"key_id"`
}
