// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-stream-setup/internal/adapter"
	"github.com/MKhiriev/go-stream-setup/internal/config"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/internal/service"
	"github.com/MKhiriev/go-stream-setup/internal/store"
	"github.com/MKhiriev/go-stream-setup/models"
)

// Secret slot names on the provider side. The workflow file references
// them by exactly these names.
const (
	SlotStreamKey   = "YOUTUBE_STREAM_KEY"
	SlotVideoURL    = "VIDEO_URL"
	SlotQuality     = "VIDEO_QUALITY"
	SlotAspectRatio = "ASPECT_RATIO"
)

// Progress receives human-readable step updates during a run. The shipped
// implementation lives in the ui package; tests use [NopProgress].
type Progress interface {
	Step(name string)
	Done(detail string)
	Fail(detail string)
}

// NopProgress discards all progress updates.
type NopProgress struct{}

func (NopProgress) Step(string) {}
func (NopProgress) Done(string) {}
func (NopProgress) Fail(string) {}

// App wires a setup run together: configuration, tracked files, the
// provider adapter, the three provisioning services, and the run journal.
type App struct {
	cfg *config.StructuredConfig

	github    adapter.GitHubAdapter
	repos     service.RepoProvisioner
	files     service.FileSyncService
	secrets   service.SecretProvisioner
	artifacts store.ArtifactStore

	// journal may be nil; journalling is best-effort and never fails a run.
	journal store.RunJournal

	progress Progress
	logger   *logger.Logger
}

// NewApp constructs an [App] from its collaborators. A nil progress is
// replaced with [NopProgress].
func NewApp(
	cfg *config.StructuredConfig,
	github adapter.GitHubAdapter,
	services *service.Services,
	artifacts store.ArtifactStore,
	journal store.RunJournal,
	progress Progress,
	log *logger.Logger,
) *App {
	if progress == nil {
		progress = NopProgress{}
	}
	return &App{
		cfg:       cfg,
		github:    github,
		repos:     services.RepoProvisioner,
		files:     services.FileSyncService,
		secrets:   services.SecretProvisioner,
		artifacts: artifacts,
		journal:   journal,
		progress:  progress,
		logger:    log,
	}
}

// Run executes the setup state machine from Init to Done and returns the
// report for the console summary. The report is also journalled when a
// journal is configured; a journal write failure only logs a warning.
func (a *App) Run(ctx context.Context) models.RunReport {
	report := models.RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
	defer func() {
		report.FinishedAt = time.Now()
		a.recordRun(ctx, report)
	}()

	a.logger.Info().Str("run_id", report.RunID).Msg("setup run started")

	artifacts, err := a.checkFiles()
	if err != nil {
		return a.halt(&report, models.StateInit, err)
	}

	if err = a.checkRunInputs(); err != nil {
		return a.halt(&report, models.StateFilesChecked, err)
	}

	run, err := a.verifyToken(ctx, artifacts)
	if err != nil {
		return a.halt(&report, models.StateConfigLoaded, err)
	}
	report.Repo = run.Repo

	a.progress.Step("Provisioning repository " + run.Repo.FullName())
	outcome, err := a.repos.Ensure(ctx, run.Repo)
	if err != nil {
		return a.halt(&report, models.StateTokenVerified, err)
	}
	report.Outcome = outcome
	a.progress.Done("repository " + string(outcome))

	a.progress.Step("Uploading tracked files")
	report.Files, err = a.files.Upload(ctx, run.Repo, run.Artifacts)
	if err != nil {
		return a.halt(&report, models.StateRepoProvisioned, err)
	}
	a.progress.Done(fmt.Sprintf("%d files uploaded", len(report.Files)))

	a.progress.Step("Provisioning secrets")
	report.Secrets, err = a.secrets.ProvisionAll(ctx, run.Repo, run.Secrets)
	if err != nil {
		return a.halt(&report, models.StateFilesUploaded, err)
	}
	a.progress.Done(fmt.Sprintf("%d secret slots written", countOK(report.Secrets)))

	report.State = models.StateDone
	a.logger.Info().
		Str("run_id", report.RunID).
		Bool("success", report.Success()).
		Msg("setup run finished")

	return report
}

// checkFiles is the Init -> FilesChecked guard: every tracked file must be
// present and loadable before any network call is made.
func (a *App) checkFiles() ([]models.Artifact, error) {
	a.progress.Step("Checking tracked files")

	missing, err := a.artifacts.Check()
	if err != nil {
		return nil, fmt.Errorf("check tracked files: %w", err)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingArtifacts, strings.Join(missing, ", "))
	}

	artifacts, err := a.artifacts.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load tracked files: %w", err)
	}

	a.progress.Done(fmt.Sprintf("%d files present", len(artifacts)))
	return artifacts, nil
}

// checkRunInputs is the FilesChecked -> ConfigLoaded guard: all six run
// inputs must be non-empty. Values are never echoed back.
func (a *App) checkRunInputs() error {
	a.progress.Step("Checking configuration")

	inputs := map[string]string{
		"stream key":   a.cfg.Stream.Key,
		"video url":    a.cfg.Stream.VideoURL,
		"quality":      a.cfg.Stream.Quality,
		"aspect ratio": a.cfg.Stream.AspectRatio,
		"github token": a.cfg.GitHub.Token,
		"repo name":    a.cfg.GitHub.RepoName,
	}
	var missing []string
	for name, value := range inputs {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingRunInput, strings.Join(missing, ", "))
	}

	a.progress.Done("all inputs present")
	return nil
}

// verifyToken is the ConfigLoaded -> TokenVerified guard. On success the
// immutable RunContext for the remaining steps is built: the repository
// owner is the login the token resolves to.
func (a *App) verifyToken(ctx context.Context, artifacts []models.Artifact) (models.RunContext, error) {
	a.progress.Step("Verifying token")

	account, err := a.github.VerifyToken(ctx)
	if err != nil {
		return models.RunContext{}, fmt.Errorf("verify token: %w", err)
	}

	a.progress.Done("authenticated as " + account.Login)
	return models.RunContext{
		Credentials: models.Credentials{Token: a.cfg.GitHub.Token, Login: account.Login},
		Repo:        models.RepositoryRef{Owner: account.Login, Name: a.cfg.GitHub.RepoName},
		Artifacts:   artifacts,
		Secrets: map[string]string{
			SlotStreamKey:   a.cfg.Stream.Key,
			SlotVideoURL:    a.cfg.Stream.VideoURL,
			SlotQuality:     a.cfg.Stream.Quality,
			SlotAspectRatio: a.cfg.Stream.AspectRatio,
		},
	}, nil
}

// halt finalises the report in the failure state derived from the state
// the run was in when its guard rejected, e.g. a files check failing out
// of Init halts in "Init.Failed". Already-completed provisioning is left
// in place.
func (a *App) halt(report *models.RunReport, from models.RunState, err error) models.RunReport {
	report.State = from.Failed()
	a.progress.Fail(err.Error())
	a.logger.Error().
		Err(err).
		Str("run_id", report.RunID).
		Str("state", string(report.State)).
		Msg("setup run halted")
	return *report
}

func (a *App) recordRun(ctx context.Context, report models.RunReport) {
	if a.journal == nil {
		return
	}
	if err := a.journal.RecordRun(ctx, report); err != nil {
		a.logger.Warn().Err(err).Str("run_id", report.RunID).Msg("journal write failed")
	}
}

func countOK(results []models.SecretResult) int {
	var n int
	for _, r := range results {
		if r.OK {
			n++
		}
	}
	return n
}
