// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"
)

// defaultSetupFile is the legacy setup file name kept for compatibility with
// earlier releases of the streamer toolchain.
const defaultSetupFile = "setup_github.txt"

// setupFileLines is the number of non-empty lines the setup file must
// carry, in fixed order: stream key, video URL, quality, aspect ratio,
// token, repository name.
const setupFileLines = 6

// parseSetupFile reads the legacy six-line setup file and maps its lines
// onto a fresh [StructuredConfig].
//
// Blank lines are skipped, every kept line is whitespace-trimmed. A missing
// file yields [ErrSetupFileNotFound] so the builder can treat the file as
// optional; fewer than six usable lines yield [ErrInvalidSetupFile].
func parseSetupFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSetupFileNotFound, path)
		}
		return nil, fmt.Errorf("read setup file %s: %w", path, err)
	}

	lines := make([]string, 0, setupFileLines)
	for _, raw := range strings.Split(string(data), "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < setupFileLines {
		return nil, fmt.Errorf("%w: %s has %d non-empty lines, need %d",
			ErrInvalidSetupFile, path, len(lines), setupFileLines)
	}

	return &StructuredConfig{
		Stream: Stream{
			Key:         lines[0],
			VideoURL:    lines[1],
			Quality:     lines[2],
			AspectRatio: lines[3],
		},
		GitHub: GitHub{
			Token:    lines[4],
			RepoName: lines[5],
		},
	}, nil
}
