// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOMLFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "setup.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseTOML_FullFile(t *testing.T) {
	path := writeTOMLFile(t, `
[github]
token = "ghp_tok"
repo = "my-repo"
api_base_url = "https://ghe.example.com/api/v3"
request_timeout = "45s"

[stream]
key = "sk_live_abc"
video_url = "https://example/video.mp4"
quality = "1080p"
aspect_ratio = "16:9"

[journal]
path = "runs.db"
`)

	cfg, err := parseTOML(path)
	require.NoError(t, err)

	assert.Equal(t, "ghp_tok", cfg.GitHub.Token)
	assert.Equal(t, "my-repo", cfg.GitHub.RepoName)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.GitHub.APIBaseURL)
	assert.Equal(t, "45s", cfg.GitHub.RequestTimeout.String())
	assert.Equal(t, "sk_live_abc", cfg.Stream.Key)
	assert.Equal(t, "runs.db", cfg.Journal.Path)
}

func TestParseTOML_UnknownKeyRejected(t *testing.T) {
	path := writeTOMLFile(t, `
[github]
tokenn = "typo"
`)

	_, err := parseTOML(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParsingTOMLFile)
}

func TestParseTOML_MissingFile(t *testing.T) {
	_, err := parseTOML(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadingTOMLFile)
}
