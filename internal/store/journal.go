// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-stream-setup/internal/logger"
	"github.com/MKhiriev/go-stream-setup/migrations"
	"github.com/MKhiriev/go-stream-setup/models"
)

// sqliteRunJournal is the SQLite-backed implementation of [RunJournal].
// One provisioning run maps to one row in "runs" plus detail rows in
// "run_files" and "run_secrets". Secret values never reach the journal.
type sqliteRunJournal struct {
	db *sql.DB

	logger *logger.Logger
}

// NewRunJournal opens (creating if needed) the SQLite journal at path and
// applies the embedded schema migrations.
func NewRunJournal(path string, log *logger.Logger) (RunJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal database %s: %w", path, err)
	}

	if err = migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal database: %w", err)
	}

	return newRunJournalWithDB(db, log), nil
}

// newRunJournalWithDB wires a journal onto an already-open handle.
// Split out so tests can substitute a mocked database.
func newRunJournalWithDB(db *sql.DB, log *logger.Logger) *sqliteRunJournal {
	return &sqliteRunJournal{db: db, logger: log}
}

// RecordRun implements [RunJournal]. The run row and all detail rows are
// written in a single transaction so a journal entry is never half-visible.
func (j *sqliteRunJournal) RecordRun(ctx context.Context, report models.RunReport) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	runInsert := sq.Insert("runs").
		Columns("run_id", "repo", "outcome", "state", "started_at", "finished_at").
		Values(report.RunID, report.Repo.FullName(), string(report.Outcome),
			string(report.State), report.StartedAt, report.FinishedAt)

	if err = execInsert(ctx, tx, runInsert); err != nil {
		return err
	}

	for _, f := range report.Files {
		fileInsert := sq.Insert("run_files").
			Columns("run_id", "path", "revision_marker", "ok").
			Values(report.RunID, f.Path, f.RevisionMarker, f.OK)
		if err = execInsert(ctx, tx, fileInsert); err != nil {
			return err
		}
	}

	for _, s := range report.Secrets {
		secretInsert := sq.Insert("run_secrets").
			Columns("run_id", "name", "ok", "err").
			Values(report.RunID, s.Name, s.OK, s.Err)
		if err = execInsert(ctx, tx, secretInsert); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	j.logger.Debug().
		Str("run_id", report.RunID).
		Str("state", string(report.State)).
		Msg("run recorded in journal")

	return nil
}

// RecentRuns implements [RunJournal]. Detail rows are not joined in; the
// summary columns are enough for the history listing.
func (j *sqliteRunJournal) RecentRuns(ctx context.Context, limit int) ([]models.RunReport, error) {
	if limit <= 0 {
		limit = 10
	}

	query, args, err := sq.Select("run_id", "repo", "outcome", "state", "started_at", "finished_at").
		From("runs").
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	defer rows.Close()

	reports := make([]models.RunReport, 0, limit)
	for rows.Next() {
		var (
			r        models.RunReport
			repoFull string
			outcome  string
			state    string
		)
		if err = rows.Scan(&r.RunID, &repoFull, &outcome, &state, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		r.Repo = splitFullName(repoFull)
		r.Outcome = models.ProvisionOutcome(outcome)
		r.State = models.RunState(state)
		reports = append(reports, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent runs: %w", err)
	}

	return reports, nil
}

// Close implements [RunJournal].
func (j *sqliteRunJournal) Close() error {
	return j.db.Close()
}

func execInsert(ctx context.Context, tx *sql.Tx, builder sq.InsertBuilder) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func splitFullName(full string) models.RepositoryRef {
	for i := range full {
		if full[i] == '/' {
			return models.RepositoryRef{Owner: full[:i], Name: full[i+1:]}
		}
	}
	return models.RepositoryRef{Name: full}
}
