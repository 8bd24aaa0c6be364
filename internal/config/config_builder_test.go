// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetupConfig_DefaultsApplied(t *testing.T) {
	chdirTemp(t)

	cfg, err := GetSetupConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.GitHub.RequestTimeout.Std())
	assert.Equal(t, "stream_setup_runs.db", cfg.Journal.Path)
	assert.Equal(t, defaultSetupFile, cfg.SetupFilePath)
}

func TestGetSetupConfig_EnvWinsOverSetupFile(t *testing.T) {
	dir := chdirTemp(t)

	content := "file-key\nfile-url\nfile-q\nfile-ar\nfile-tok\nfile-repo\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultSetupFile), []byte(content), 0o600))

	t.Setenv("GITHUB_TOKEN", "env-tok")
	t.Setenv("STREAM_KEY", "env-key")

	cfg, err := GetSetupConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "env-tok", cfg.GitHub.Token)
	assert.Equal(t, "env-key", cfg.Stream.Key)
	// Untouched values still flow in from the setup file.
	assert.Equal(t, "file-repo", cfg.GitHub.RepoName)
	assert.Equal(t, "file-ar", cfg.Stream.AspectRatio)
}

func TestGetSetupConfig_FlagsWinOverTOML(t *testing.T) {
	dir := chdirTemp(t)

	tomlPath := filepath.Join(dir, "setup.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[github]\ntoken = \"toml-tok\"\nrepo = \"toml-repo\"\n"), 0o600))

	flags := &StructuredConfig{
		GitHub:       GitHub{Token: "flag-tok"},
		TOMLFilePath: tomlPath,
	}

	cfg, err := GetSetupConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "flag-tok", cfg.GitHub.Token)
	assert.Equal(t, "toml-repo", cfg.GitHub.RepoName)
}

func TestGetSetupConfig_MalformedSetupFileIsFatal(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultSetupFile), []byte("only\nthree\nlines\n"), 0o600))

	_, err := GetSetupConfig(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSetupFile)
}

func TestValidate_BadBaseURL(t *testing.T) {
	chdirTemp(t)

	flags := &StructuredConfig{GitHub: GitHub{APIBaseURL: "::not-a-url"}}

	_, err := GetSetupConfig(flags)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGitHubConfigs)
}

// chdirTemp moves the test into an empty directory so the builder never
// picks up a developer's real setup_github.txt.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
	return dir
}
