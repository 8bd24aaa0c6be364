// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stream-setup/internal/adapter"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/models"
)

// targetBranch is the branch every content write lands on. Created
// repositories are auto-initialised with it.
const targetBranch = "main"

// FileSyncFileService is the [FileSyncService] implementation backed by the
// GitHub contents API.
type FileSyncFileService struct {
	github adapter.GitHubAdapter

	logger *logger.Logger
}

// NewFileSyncService returns a [FileSyncService] uploading via the adapter.
func NewFileSyncService(github adapter.GitHubAdapter, log *logger.Logger) *FileSyncFileService {
	return &FileSyncFileService{github: github, logger: log}
}

// Upload implements [FileSyncService]. Files are uploaded sequentially in
// the given order; each upload probes the path for its current revision
// marker and echoes it back on overwrite so the write is conditional. The
// first failure aborts the remaining uploads; the returned results cover
// every file attempted so far, including the failed one.
func (s *FileSyncFileService) Upload(ctx context.Context, ref models.RepositoryRef, artifacts []models.Artifact) ([]models.FileResult, error) {
	results := make([]models.FileResult, 0, len(artifacts))

	for _, artifact := range artifacts {
		marker, err := s.probeMarker(ctx, ref, artifact.Path)
		if err != nil {
			results = append(results, models.FileResult{Path: artifact.Path})
			return results, fmt.Errorf("probe %s: %w", artifact.Path, err)
		}

		err = s.github.PutContent(ctx, ref, artifact.Path, models.ContentWriteRequest{
			Message: "Upload " + artifact.Path,
			Content: base64.StdEncoding.EncodeToString(artifact.Content),
			Branch:  targetBranch,
			SHA:     marker,
		})
		if err != nil {
			results = append(results, models.FileResult{Path: artifact.Path, RevisionMarker: marker})
			if errors.Is(err, adapter.ErrConflict) {
				return results, fmt.Errorf("%w: %s", ErrUploadConflict, artifact.Path)
			}
			return results, fmt.Errorf("upload %s: %w", artifact.Path, err)
		}

		s.logger.Info().
			Str("path", artifact.Path).
			Bool("overwrite", marker != "").
			Msg("file uploaded")
		results = append(results, models.FileResult{Path: artifact.Path, RevisionMarker: marker, OK: true})
	}

	return results, nil
}

// probeMarker returns the current revision marker of path, or "" when the
// path has no prior content.
func (s *FileSyncFileService) probeMarker(ctx context.Context, ref models.RepositoryRef, path string) (string, error) {
	content, err := s.github.GetContent(ctx, ref, path)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return content.SHA, nil
}
