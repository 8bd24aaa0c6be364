// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/MKhiriev/go-stream-setup/models"
)

// Reporter renders per-step progress with a spinner and the final run
// summary. It never prints secret values; results only carry slot names
// and failure descriptions.
type Reporter struct {
	spin *spinner.Spinner
}

// NewReporter constructs a console [Reporter].
func NewReporter() *Reporter {
	return &Reporter{
		spin: spinner.New(spinner.CharSets[14], 100*time.Millisecond),
	}
}

// Step starts a spinner for the named step.
func (r *Reporter) Step(name string) {
	r.spin.Suffix = " " + name
	r.spin.Start()
}

// Done stops the current step spinner and prints a success line.
func (r *Reporter) Done(detail string) {
	r.spin.Stop()
	fmt.Printf("%s %s\n", color.GreenString("✓"), detail)
}

// Fail stops the current step spinner and prints a failure line.
func (r *Reporter) Fail(detail string) {
	r.spin.Stop()
	fmt.Printf("%s %s\n", color.RedString("✗"), detail)
}

// Summary prints the final run report: repository, outcome, per-file and
// per-slot results, and the Actions URL to check on success.
func (r *Reporter) Summary(report models.RunReport) {
	fmt.Println()

	if report.Success() {
		color.Green("Setup complete: %s (%s)", report.Repo.FullName(), report.Outcome)
	} else {
		color.Red("Setup finished in state %s", report.State)
	}

	for _, f := range report.Files {
		mark := color.GreenString("✓")
		if !f.OK {
			mark = color.RedString("✗")
		}
		fmt.Printf("  %s %s\n", mark, f.Path)
	}

	for _, s := range report.Secrets {
		if s.OK {
			fmt.Printf("  %s secret %s\n", color.GreenString("✓"), s.Name)
			continue
		}
		fmt.Printf("  %s secret %s: %s\n", color.RedString("✗"), s.Name, s.Err)
	}

	if report.Success() {
		fmt.Println()
		fmt.Printf("Check the stream at https://github.com/%s/actions\n", report.Repo.FullName())
	}
}
