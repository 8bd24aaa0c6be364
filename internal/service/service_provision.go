// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stream-setup/internal/adapter"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/models"
)

// repoDescription is the fixed description stamped on created repositories.
const repoDescription = "24/7 YouTube Auto Streamer"

const (
	defaultReadinessAttempts = 5
	defaultReadinessInterval = 500 * time.Millisecond
)

// RepoProvisionService is the [RepoProvisioner] implementation backed by
// the GitHub adapter.
type RepoProvisionService struct {
	github adapter.GitHubAdapter

	// readiness poll policy for freshly created repositories. A created
	// repository can answer 404 for a short window; instead of a blind
	// sleep the service re-probes until the resource is visible.
	readinessAttempts int
	readinessInterval time.Duration

	logger *logger.Logger
}

// NewRepoProvisionService returns a [RepoProvisioner] with the default
// readiness poll policy.
func NewRepoProvisionService(github adapter.GitHubAdapter, log *logger.Logger) *RepoProvisionService {
	return &RepoProvisionService{
		github:            github,
		readinessAttempts: defaultReadinessAttempts,
		readinessInterval: defaultReadinessInterval,
		logger:            log,
	}
}

// Ensure implements [RepoProvisioner]. An existing repository is never
// modified: its visibility, description and contents stay as found.
func (s *RepoProvisionService) Ensure(ctx context.Context, ref models.RepositoryRef) (models.ProvisionOutcome, error) {
	repo, err := s.github.GetRepository(ctx, ref)
	if err == nil {
		s.logger.Info().
			Str("repo", ref.FullName()).
			Str("default_branch", repo.DefaultBranch).
			Msg("repository already exists, reusing")
		return models.OutcomeReused, nil
	}
	if !errors.Is(err, adapter.ErrNotFound) {
		return "", fmt.Errorf("probe repository %s: %w", ref.FullName(), err)
	}

	_, err = s.github.CreateRepository(ctx, models.CreateRepositoryRequest{
		Name:        ref.Name,
		Private:     false,
		Description: repoDescription,
		AutoInit:    true,
	})
	if err != nil {
		return "", fmt.Errorf("create repository %s: %w", ref.FullName(), err)
	}

	if err = s.awaitReady(ctx, ref); err != nil {
		return "", err
	}

	s.logger.Info().Str("repo", ref.FullName()).Msg("repository created")
	return models.OutcomeCreated, nil
}

// awaitReady re-probes the repository until it answers, the attempts run
// out, or ctx is cancelled.
func (s *RepoProvisionService) awaitReady(ctx context.Context, ref models.RepositoryRef) error {
	for attempt := 1; attempt <= s.readinessAttempts; attempt++ {
		_, err := s.github.GetRepository(ctx, ref)
		if err == nil {
			return nil
		}
		if !errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("readiness probe for %s: %w", ref.FullName(), err)
		}

		s.logger.Debug().
			Str("repo", ref.FullName()).
			Int("attempt", attempt).
			Msg("created repository not visible yet")

		if attempt == s.readinessAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.readinessInterval):
		}
	}

	return fmt.Errorf("%w: %s after %d probes", ErrRepoNotReady, ref.FullName(), s.readinessAttempts)
}
