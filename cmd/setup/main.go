// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command setup provisions a GitHub repository for the 24/7 streaming
// workload: it verifies the token, creates or reuses the repository,
// uploads the tracked workload files, and seals the streaming
// configuration into Actions secrets.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-stream-setup/internal/adapter"
	"github.com/MKhiriev/go-stream-setup/internal/client"
	"github.com/MKhiriev/go-stream-setup/internal/config"
	"github.com/MKhiriev/go-stream-setup/internal/crypto"
	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/internal/service"
	"github.com/MKhiriev/go-stream-setup/internal/store"
	"github.com/MKhiriev/go-stream-setup/internal/ui"
)

// Build metadata, stamped via -ldflags at release time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

var (
	flagCfg config.StructuredConfig
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:          "stream-setup",
		Short:        "Provision a GitHub repository for 24/7 streaming",
		SilenceUsage: true,
		RunE:         runSetup,
	}

	root.PersistentFlags().StringVar(&flagCfg.SetupFilePath, "setup-file", "", "path to the six-line setup file")
	root.PersistentFlags().StringVar(&flagCfg.TOMLFilePath, "config", "", "path to a TOML configuration file")
	root.PersistentFlags().StringVar(&flagCfg.GitHub.Token, "token", "", "GitHub personal access token")
	root.PersistentFlags().StringVar(&flagCfg.GitHub.RepoName, "repo", "", "repository name to create or reuse")
	root.PersistentFlags().StringVar(&flagCfg.Journal.Path, "journal", "", "path to the run-journal database")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(versionCmd(), historyCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSetup(cmd *cobra.Command, _ []string) error {
	log := newLog()

	cfg, err := config.GetSetupConfig(&flagCfg)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg.App.Version = buildVersion

	ui.PrintBanner(buildVersion)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	github, err := adapter.NewGitHubAdapter(cfg.GitHub, log.GetChildLogger("github"))
	if err != nil {
		return fmt.Errorf("build API client: %w", err)
	}

	journal, err := store.NewRunJournal(cfg.Journal.Path, log.GetChildLogger("journal"))
	if err != nil {
		// the journal is best-effort; a broken database must not block setup
		log.Warn().Err(err).Msg("run journal unavailable")
		journal = nil
	} else {
		defer journal.Close()
	}

	reporter := ui.NewReporter()
	app := client.NewApp(
		cfg,
		github,
		service.NewServices(github, crypto.NewSealedBoxSealer(), log),
		store.NewArtifactStore(".", log.GetChildLogger("files")),
		journal,
		reporter,
		log,
	)

	report := app.Run(ctx)
	reporter.Summary(report)

	if !report.Success() {
		return fmt.Errorf("setup finished in state %s", report.State)
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("Build version: %s\n", buildVersion)
			fmt.Printf("Build date: %s\n", buildDate)
			fmt.Printf("Build commit: %s\n", buildCommit)
		},
	}
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent setup runs from the local journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLog()

			cfg, err := config.GetSetupConfig(&flagCfg)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			journal, err := store.NewRunJournal(cfg.Journal.Path, log.GetChildLogger("journal"))
			if err != nil {
				return fmt.Errorf("open run journal: %w", err)
			}
			defer journal.Close()

			runs, err := journal.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list recent runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println("no recorded runs")
				return nil
			}

			for _, r := range runs {
				fmt.Printf("%s  %-40s  %-10s  %s\n",
					r.StartedAt.Format("2006-01-02 15:04:05"),
					r.Repo.FullName(), r.Outcome, r.State)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of runs to list")
	return cmd
}

func newLog() *logger.Logger {
	log := logger.NewLogger("setup")
	if verbose {
		logger.SetDebug()
	}
	return log
}
