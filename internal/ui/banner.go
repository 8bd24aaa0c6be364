// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ui renders the human-facing console output of a setup run:
// the startup banner, per-step progress, and the final summary. All
// output goes to stdout; structured logs stay on stderr.
package ui

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// PrintBanner renders the startup banner with the running version.
func PrintBanner(version string) {
	banner := figure.NewFigure("stream-setup", "", true)
	color.Cyan(banner.String())
	fmt.Println(color.HiBlackString("GitHub repository provisioning for 24/7 streaming  %s", version))
	fmt.Println()
}
