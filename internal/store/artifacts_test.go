// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workflowYAML = `name: youtube-live
on:
  workflow_dispatch:
jobs:
  stream:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
`

func writeTrackedFiles(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "streamer.py"), []byte("print('stream')\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("requests\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".github", "workflows", "youtube-live.yml"), []byte(workflowYAML), 0o600))
}

func TestCheck_AllPresent(t *testing.T) {
	dir := t.TempDir()
	writeTrackedFiles(t, dir)

	s := NewArtifactStore(dir, logger.Nop())

	missing, err := s.Check()
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCheck_ReportsEveryMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "streamer.py"), []byte("x"), 0o600))

	s := NewArtifactStore(dir, logger.Nop())

	missing, err := s.Check()
	require.NoError(t, err)
	assert.Equal(t, []string{"requirements.txt", ".github/workflows/youtube-live.yml"}, missing)
}

func TestLoadAll_ReturnsArtifactsInTrackedOrder(t *testing.T) {
	dir := t.TempDir()
	writeTrackedFiles(t, dir)

	s := NewArtifactStore(dir, logger.Nop())

	artifacts, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	assert.Equal(t, "streamer.py", artifacts[0].Path)
	assert.Equal(t, "requirements.txt", artifacts[1].Path)
	assert.Equal(t, ".github/workflows/youtube-live.yml", artifacts[2].Path)
	assert.Equal(t, []byte("print('stream')\n"), artifacts[0].Content)
}

func TestLoadAll_FailsOnMissing(t *testing.T) {
	s := NewArtifactStore(t.TempDir(), logger.Nop())

	_, err := s.LoadAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingArtifacts)
}

func TestLoadAll_RejectsBrokenWorkflowYAML(t *testing.T) {
	dir := t.TempDir()
	writeTrackedFiles(t, dir)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".github", "workflows", "youtube-live.yml"),
		[]byte("jobs:\n  stream:\n    bad_indent:\n  - ["), 0o600))

	s := NewArtifactStore(dir, logger.Nop())

	_, err := s.LoadAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWorkflow)
}
