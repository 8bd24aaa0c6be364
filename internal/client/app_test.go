// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stream-setup/internal/adapter"
	"github.com/MKhiriev/go-stream-setup/internal/config"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/internal/mock"
	"github.com/MKhiriev/go-stream-setup/internal/service"
	"github.com/MKhiriev/go-stream-setup/models"
)

type appMocks struct {
	github    *mock.MockGitHubAdapter
	repos     *mock.MockRepoProvisioner
	files     *mock.MockFileSyncService
	secrets   *mock.MockSecretProvisioner
	artifacts *mock.MockArtifactStore
	journal   *mock.MockRunJournal
}

func newTestApp(t *testing.T) (*App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		github:    mock.NewMockGitHubAdapter(ctrl),
		repos:     mock.NewMockRepoProvisioner(ctrl),
		files:     mock.NewMockFileSyncService(ctrl),
		secrets:   mock.NewMockSecretProvisioner(ctrl),
		artifacts: mock.NewMockArtifactStore(ctrl),
		journal:   mock.NewMockRunJournal(ctrl),
	}

	cfg := &config.StructuredConfig{}
	cfg.GitHub.Token = "ghp_test"
	cfg.GitHub.RepoName = "stream-repo"
	cfg.Stream.Key = "rtmp-key"
	cfg.Stream.VideoURL = "https://example.com/video.mp4"
	cfg.Stream.Quality = "1080"
	cfg.Stream.AspectRatio = "16:9"

	services := &service.Services{
		RepoProvisioner:   m.repos,
		FileSyncService:   m.files,
		SecretProvisioner: m.secrets,
	}

	app := NewApp(cfg, m.github, services, m.artifacts, m.journal, nil, logger.Nop())
	return app, m
}

func testArtifacts() []models.Artifact {
	return []models.Artifact{
		{Path: "streamer.py", Content: []byte("a")},
		{Path: "requirements.txt", Content: []byte("b")},
		{Path: ".github/workflows/youtube-live.yml", Content: []byte("c")},
	}
}

var appRef = models.RepositoryRef{Owner: "octo", Name: "stream-repo"}

func TestRun_FullFlowReachesDone(t *testing.T) {
	app, m := newTestApp(t)
	artifacts := testArtifacts()

	m.artifacts.EXPECT().Check().Return(nil, nil)
	m.artifacts.EXPECT().LoadAll().Return(artifacts, nil)
	m.github.EXPECT().VerifyToken(gomock.Any()).Return(models.Account{Login: "octo"}, nil)
	m.repos.EXPECT().Ensure(gomock.Any(), appRef).Return(models.OutcomeCreated, nil)
	m.files.EXPECT().Upload(gomock.Any(), appRef, artifacts).Return([]models.FileResult{
		{Path: "streamer.py", OK: true},
		{Path: "requirements.txt", OK: true},
		{Path: ".github/workflows/youtube-live.yml", OK: true},
	}, nil)
	m.secrets.EXPECT().ProvisionAll(gomock.Any(), appRef, map[string]string{
		SlotStreamKey:   "rtmp-key",
		SlotVideoURL:    "https://example.com/video.mp4",
		SlotQuality:     "1080",
		SlotAspectRatio: "16:9",
	}).Return([]models.SecretResult{
		{Name: SlotAspectRatio, OK: true},
		{Name: SlotQuality, OK: true},
		{Name: SlotVideoURL, OK: true},
		{Name: SlotStreamKey, OK: true},
	}, nil)
	m.journal.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)

	report := app.Run(context.Background())

	assert.Equal(t, models.StateDone, report.State)
	assert.Equal(t, models.OutcomeCreated, report.Outcome)
	assert.True(t, report.Success())
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "octo/stream-repo", report.Repo.FullName())
}

func TestRun_MissingFilesHaltBeforeAnyNetworkCall(t *testing.T) {
	app, m := newTestApp(t)

	m.artifacts.EXPECT().Check().Return([]string{"streamer.py"}, nil)
	m.journal.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)
	// no adapter or service expectations: the run must not reach the network

	report := app.Run(context.Background())

	assert.Equal(t, models.StateInit.Failed(), report.State)
	assert.False(t, report.Success())
}

func TestRun_MissingInputHaltsBeforeTokenVerification(t *testing.T) {
	app, m := newTestApp(t)
	app.cfg.Stream.Key = ""

	m.artifacts.EXPECT().Check().Return(nil, nil)
	m.artifacts.EXPECT().LoadAll().Return(testArtifacts(), nil)
	m.journal.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)

	report := app.Run(context.Background())

	assert.Equal(t, models.StateFilesChecked.Failed(), report.State)
}

func TestRun_RejectedTokenHaltsRun(t *testing.T) {
	app, m := newTestApp(t)

	m.artifacts.EXPECT().Check().Return(nil, nil)
	m.artifacts.EXPECT().LoadAll().Return(testArtifacts(), nil)
	m.github.EXPECT().VerifyToken(gomock.Any()).
		Return(models.Account{}, adapter.ErrUnauthorized)
	m.journal.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)

	report := app.Run(context.Background())

	assert.Equal(t, models.StateConfigLoaded.Failed(), report.State)
}

func TestRun_UploadFailureKeepsPartialResults(t *testing.T) {
	app, m := newTestApp(t)
	artifacts := testArtifacts()

	m.artifacts.EXPECT().Check().Return(nil, nil)
	m.artifacts.EXPECT().LoadAll().Return(artifacts, nil)
	m.github.EXPECT().VerifyToken(gomock.Any()).Return(models.Account{Login: "octo"}, nil)
	m.repos.EXPECT().Ensure(gomock.Any(), appRef).Return(models.OutcomeReused, nil)
	m.files.EXPECT().Upload(gomock.Any(), appRef, artifacts).Return([]models.FileResult{
		{Path: "streamer.py", OK: true},
		{Path: "requirements.txt", OK: false},
	}, service.ErrUploadConflict)
	m.journal.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)

	report := app.Run(context.Background())

	assert.Equal(t, models.StateRepoProvisioned.Failed(), report.State)
	assert.Equal(t, models.OutcomeReused, report.Outcome)
	require.Len(t, report.Files, 2)
}

func TestRun_UnusableKeyHaltsSecretPhase(t *testing.T) {
	app, m := newTestApp(t)
	artifacts := testArtifacts()

	m.artifacts.EXPECT().Check().Return(nil, nil)
	m.artifacts.EXPECT().LoadAll().Return(artifacts, nil)
	m.github.EXPECT().VerifyToken(gomock.Any()).Return(models.Account{Login: "octo"}, nil)
	m.repos.EXPECT().Ensure(gomock.Any(), appRef).Return(models.OutcomeReused, nil)
	m.files.EXPECT().Upload(gomock.Any(), appRef, artifacts).Return([]models.FileResult{
		{Path: "streamer.py", OK: true},
		{Path: "requirements.txt", OK: true},
		{Path: ".github/workflows/youtube-live.yml", OK: true},
	}, nil)
	m.secrets.EXPECT().ProvisionAll(gomock.Any(), appRef, gomock.Any()).
		Return(nil, service.ErrPublicKeyUnavailable)
	m.journal.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)

	report := app.Run(context.Background())

	assert.Equal(t, models.StateFilesUploaded.Failed(), report.State)
	assert.False(t, report.Success())
	assert.Empty(t, report.Secrets)
}

func TestRun_PartialSecretFailureStillReachesDone(t *testing.T) {
	app, m := newTestApp(t)
	artifacts := testArtifacts()

	m.artifacts.EXPECT().Check().Return(nil, nil)
	m.artifacts.EXPECT().LoadAll().Return(artifacts, nil)
	m.github.EXPECT().VerifyToken(gomock.Any()).Return(models.Account{Login: "octo"}, nil)
	m.repos.EXPECT().Ensure(gomock.Any(), appRef).Return(models.OutcomeReused, nil)
	m.files.EXPECT().Upload(gomock.Any(), appRef, artifacts).Return([]models.FileResult{
		{Path: "streamer.py", OK: true},
		{Path: "requirements.txt", OK: true},
		{Path: ".github/workflows/youtube-live.yml", OK: true},
	}, nil)
	m.secrets.EXPECT().ProvisionAll(gomock.Any(), appRef, gomock.Any()).
		Return([]models.SecretResult{
			{Name: SlotAspectRatio, OK: true},
			{Name: SlotQuality, OK: false, Err: "store: forbidden"},
			{Name: SlotVideoURL, OK: true},
			{Name: SlotStreamKey, OK: true},
		}, nil)
	m.journal.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)

	report := app.Run(context.Background())

	// all slots were attempted, so the machine reaches Done, but the run
	// as a whole is not a success
	assert.Equal(t, models.StateDone, report.State)
	assert.False(t, report.Success())
}

func TestRun_JournalFailureDoesNotFailRun(t *testing.T) {
	app, m := newTestApp(t)

	m.artifacts.EXPECT().Check().Return([]string{"streamer.py"}, nil)
	m.journal.EXPECT().RecordRun(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	report := app.Run(context.Background())

	assert.Equal(t, models.StateInit.Failed(), report.State)
}

func TestRun_NilJournalIsAllowed(t *testing.T) {
	app, m := newTestApp(t)
	app.journal = nil

	m.artifacts.EXPECT().Check().Return([]string{"streamer.py"}, nil)

	report := app.Run(context.Background())

	assert.Equal(t, models.StateInit.Failed(), report.State)
}
