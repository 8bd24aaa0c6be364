// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/models"
	"gopkg.in/yaml.v3"
)

// trackedFiles is the fixed set of workload files a setup run synchronises
// into the target repository, in upload order.
var trackedFiles = []string{
	"streamer.py",
	"requirements.txt",
	".github/workflows/youtube-live.yml",
}

// TrackedFiles returns a copy of the tracked file list.
func TrackedFiles() []string {
	out := make([]string, len(trackedFiles))
	copy(out, trackedFiles)
	return out
}

// localArtifactStore is the filesystem implementation of [ArtifactStore].
// It reads the tracked files relative to baseDir.
type localArtifactStore struct {
	baseDir string
	tracked []string

	logger *logger.Logger
}

// NewArtifactStore constructs an [ArtifactStore] rooted at baseDir.
// An empty baseDir means the current working directory.
func NewArtifactStore(baseDir string, log *logger.Logger) ArtifactStore {
	if baseDir == "" {
		baseDir = "."
	}

	return &localArtifactStore{
		baseDir: baseDir,
		tracked: TrackedFiles(),
		logger:  log,
	}
}

// Check implements [ArtifactStore]. It stats every tracked file and
// collects the missing ones so the caller can report them all at once
// instead of failing on the first.
func (s *localArtifactStore) Check() ([]string, error) {
	var missing []string

	for _, path := range s.tracked {
		if _, err := os.Stat(filepath.Join(s.baseDir, path)); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, path)
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	return missing, nil
}

// LoadAll implements [ArtifactStore]. It reads every tracked file into an
// [models.Artifact] and parses workflow definitions as YAML, rejecting a
// syntactically broken workflow before any network call is spent on it.
func (s *localArtifactStore) LoadAll() ([]models.Artifact, error) {
	missing, err := s.Check()
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingArtifacts, strings.Join(missing, ", "))
	}

	artifacts := make([]models.Artifact, 0, len(s.tracked))
	for _, path := range s.tracked {
		content, err := os.ReadFile(filepath.Join(s.baseDir, path))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		if isWorkflowFile(path) {
			if err := validateWorkflowYAML(content); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidWorkflow, path, err)
			}
		}

		s.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("artifact loaded")
		artifacts = append(artifacts, models.Artifact{Path: path, Content: content})
	}

	return artifacts, nil
}

func isWorkflowFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yml" || ext == ".yaml"
}

func validateWorkflowYAML(content []byte) error {
	// Decode into a Node: workflow files use keys like "on" that YAML 1.1
	// resolvers turn into booleans, which a string-keyed map would reject.
	var doc yaml.Node
	return yaml.Unmarshal(content, &doc)
}
