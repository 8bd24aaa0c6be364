// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stream-setup/internal/adapter"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/internal/mock"
	"github.com/MKhiriev/go-stream-setup/models"
)

func TestUpload_FreshPathOmitsRevisionMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	github := mock.NewMockGitHubAdapter(ctrl)

	artifact := models.Artifact{Path: "streamer.py", Content: []byte("print('live')\n")}

	github.EXPECT().GetContent(gomock.Any(), testRef, "streamer.py").
		Return(models.RepoContent{}, adapter.ErrNotFound)
	github.EXPECT().PutContent(gomock.Any(), testRef, "streamer.py", models.ContentWriteRequest{
		Message: "Upload streamer.py",
		Content: base64.StdEncoding.EncodeToString(artifact.Content),
		Branch:  "main",
		SHA:     "",
	}).Return(nil)

	results, err := NewFileSyncService(github, logger.Nop()).
		Upload(context.Background(), testRef, []models.Artifact{artifact})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].OK)
	assert.Empty(t, results[0].RevisionMarker)
}

func TestUpload_ExistingPathEchoesRevisionMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	github := mock.NewMockGitHubAdapter(ctrl)

	artifact := models.Artifact{Path: "requirements.txt", Content: []byte("requests\n")}

	github.EXPECT().GetContent(gomock.Any(), testRef, "requirements.txt").
		Return(models.RepoContent{Path: "requirements.txt", SHA: "abc123"}, nil)
	github.EXPECT().PutContent(gomock.Any(), testRef, "requirements.txt", models.ContentWriteRequest{
		Message: "Upload requirements.txt",
		Content: base64.StdEncoding.EncodeToString(artifact.Content),
		Branch:  "main",
		SHA:     "abc123",
	}).Return(nil)

	results, err := NewFileSyncService(github, logger.Nop()).
		Upload(context.Background(), testRef, []models.Artifact{artifact})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].OK)
	assert.Equal(t, "abc123", results[0].RevisionMarker)
}

func TestUpload_SequentialOrderPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	github := mock.NewMockGitHubAdapter(ctrl)

	artifacts := []models.Artifact{
		{Path: "streamer.py", Content: []byte("a")},
		{Path: "requirements.txt", Content: []byte("b")},
		{Path: ".github/workflows/youtube-live.yml", Content: []byte("c")},
	}

	var calls []any
	for _, a := range artifacts {
		calls = append(calls,
			github.EXPECT().GetContent(gomock.Any(), testRef, a.Path).
				Return(models.RepoContent{}, adapter.ErrNotFound),
			github.EXPECT().PutContent(gomock.Any(), testRef, a.Path, gomock.Any()).
				Return(nil),
		)
	}
	gomock.InOrder(calls...)

	results, err := NewFileSyncService(github, logger.Nop()).
		Upload(context.Background(), testRef, artifacts)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, a := range artifacts {
		assert.Equal(t, a.Path, results[i].Path)
		assert.True(t, results[i].OK)
	}
}

func TestUpload_ConflictAbortsRemainingFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	github := mock.NewMockGitHubAdapter(ctrl)

	artifacts := []models.Artifact{
		{Path: "streamer.py", Content: []byte("a")},
		{Path: "requirements.txt", Content: []byte("b")},
	}

	github.EXPECT().GetContent(gomock.Any(), testRef, "streamer.py").
		Return(models.RepoContent{SHA: "stale"}, nil)
	github.EXPECT().PutContent(gomock.Any(), testRef, "streamer.py", gomock.Any()).
		Return(adapter.ErrConflict)
	// no expectations for requirements.txt: the failure halts the step

	results, err := NewFileSyncService(github, logger.Nop()).
		Upload(context.Background(), testRef, artifacts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUploadConflict)

	require.Len(t, results, 1)
	assert.Equal(t, "streamer.py", results[0].Path)
	assert.False(t, results[0].OK)
}

func TestUpload_ProbeFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	github := mock.NewMockGitHubAdapter(ctrl)

	github.EXPECT().GetContent(gomock.Any(), testRef, "streamer.py").
		Return(models.RepoContent{}, adapter.ErrForbidden)

	results, err := NewFileSyncService(github, logger.Nop()).
		Upload(context.Background(), testRef, []models.Artifact{{Path: "streamer.py"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrForbidden)

	require.Len(t, results, 1)
	assert.False(t, results[0].OK)
}
