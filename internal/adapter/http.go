// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-stream-setup/internal/config"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/models"
	"github.com/go-resty/resty/v2"
)

// acceptHeader selects the provider API version on every call.
const acceptHeader = "application/vnd.github.v3+json"

type githubAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewGitHubAdapter constructs the HTTP implementation of [GitHubAdapter].
// It normalises and validates the base URL from cfg.APIBaseURL and
// configures the underlying resty client with the bearer credential, the
// API-version accept header, and the request timeout. The client never
// retries; every failed call is surfaced to the caller exactly once.
//
// Returns an error if cfg.APIBaseURL is empty or cannot be parsed as a
// valid URL.
func NewGitHubAdapter(cfg config.GitHub, log *logger.Logger) (GitHubAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github api base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout.Std()).
		SetAuthScheme("token").
		SetAuthToken(cfg.Token).
		SetHeader("Accept", acceptHeader)

	return &githubAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// VerifyToken implements [GitHubAdapter]. It GETs /user and decodes the
// account handle from the "login" field. A 401 surfaces as
// [ErrUnauthorized] (wrapped) before any mutating call is attempted.
func (g *githubAdapter) VerifyToken(ctx context.Context) (models.Account, error) {
	resp, err := g.client.R().SetContext(ctx).Get("/user")
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: verify token: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var account models.Account
	if err = json.Unmarshal(resp.Body(), &account); err != nil {
		return models.Account{}, fmt.Errorf("decode user response: %w", err)
	}
	if account.Login == "" {
		return models.Account{}, fmt.Errorf("user response carries no login")
	}

	return account, nil
}

// GetRepository implements [GitHubAdapter]. It GETs /repos/{owner}/{name};
// a 404 surfaces as [ErrNotFound] (wrapped) so the provisioner can branch
// to creation.
func (g *githubAdapter) GetRepository(ctx context.Context, ref models.RepositoryRef) (models.Repository, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get(repoPath(ref))
	if err != nil {
		return models.Repository{}, fmt.Errorf("%w: get repository %s: %w", ErrTransport, ref.FullName(), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Repository{}, err
	}

	var repo models.Repository
	if err = json.Unmarshal(resp.Body(), &repo); err != nil {
		return models.Repository{}, fmt.Errorf("decode repository response: %w", err)
	}

	return repo, nil
}

// CreateRepository implements [GitHubAdapter]. It POSTs the creation body
// to /user/repos and decodes the created resource.
func (g *githubAdapter) CreateRepository(ctx context.Context, req models.CreateRepositoryRequest) (models.Repository, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/user/repos")
	if err != nil {
		return models.Repository{}, fmt.Errorf("%w: create repository %s: %w", ErrTransport, req.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Repository{}, err
	}

	var repo models.Repository
	if err = json.Unmarshal(resp.Body(), &repo); err != nil {
		return models.Repository{}, fmt.Errorf("decode created repository response: %w", err)
	}

	return repo, nil
}

// GetContent implements [GitHubAdapter]. It GETs the content resource at
// path and returns its revision marker. A 404 surfaces as [ErrNotFound]
// (wrapped), meaning the path has no prior content and the subsequent write
// must omit the marker.
func (g *githubAdapter) GetContent(ctx context.Context, ref models.RepositoryRef, path string) (models.RepoContent, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get(contentPath(ref, path))
	if err != nil {
		return models.RepoContent{}, fmt.Errorf("%w: get content %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RepoContent{}, err
	}

	var content models.RepoContent
	if err = json.Unmarshal(resp.Body(), &content); err != nil {
		return models.RepoContent{}, fmt.Errorf("decode content response: %w", err)
	}

	return content, nil
}

// PutContent implements [GitHubAdapter]. It PUTs the write request to the
// content resource at path. Success is exactly 200 (overwrite) or 201
// (fresh path); a 409 surfaces as [ErrConflict] (wrapped): the revision
// marker no longer matches the remote content.
func (g *githubAdapter) PutContent(ctx context.Context, ref models.RepositoryRef, path string, req models.ContentWriteRequest) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(contentPath(ref, path))
	if err != nil {
		return fmt.Errorf("%w: put content %s: %w", ErrTransport, path, err)
	}

	return requireStatus(resp, http.StatusOK, http.StatusCreated)
}

// GetActionsPublicKey implements [GitHubAdapter]. It GETs the repository
// Actions public key used to seal secret values.
func (g *githubAdapter) GetActionsPublicKey(ctx context.Context, ref models.RepositoryRef) (models.ActionsPublicKey, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		Get(repoPath(ref) + "/actions/secrets/public-key")
	if err != nil {
		return models.ActionsPublicKey{}, fmt.Errorf("%w: get actions public key: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActionsPublicKey{}, err
	}

	var key models.ActionsPublicKey
	if err = json.Unmarshal(resp.Body(), &key); err != nil {
		return models.ActionsPublicKey{}, fmt.Errorf("decode public key response: %w", err)
	}

	return key, nil
}

// PutActionsSecret implements [GitHubAdapter]. It PUTs the sealed value to
// the named secret slot. Success is exactly 201 (created) or 204
// (updated). The request body never carries plaintext.
func (g *githubAdapter) PutActionsSecret(ctx context.Context, ref models.RepositoryRef, name string, req models.SecretWriteRequest) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(repoPath(ref) + "/actions/secrets/" + url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("%w: put actions secret %s: %w", ErrTransport, name, err)
	}

	return requireStatus(resp, http.StatusCreated, http.StatusNoContent)
}

func repoPath(ref models.RepositoryRef) string {
	return "/repos/" + url.PathEscape(ref.Owner) + "/" + url.PathEscape(ref.Name)
}

// contentPath escapes each path segment separately: the contents API keeps
// directory separators literal (".github/workflows/x.yml").
func contentPath(ref models.RepositoryRef, path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return repoPath(ref) + "/contents/" + strings.Join(segments, "/")
}
