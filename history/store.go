// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history keeps a ledger of scheduling runs in SQLite so results
// for the same dataset can be compared across heuristics and settings.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/someonegg/signup"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	db *sql.DB
}

type Run struct {
	ID          string
	Dataset     string
	StartedAt   time.Time
	Duration    time.Duration
	StallPolicy signup.StallPolicy

	signup.Summary
}

// Open creates or opens the ledger at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	// single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts the run, assigning an id when it has none.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, dataset, started_at, duration_ms, providers, committed, contributing, items, days, value, stall_policy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Dataset,
		run.StartedAt.UnixMilli(),
		run.Duration.Milliseconds(),
		run.ProvidersCount,
		run.Committed,
		run.Contributing,
		run.ItemsClaimed,
		run.Days,
		run.Value,
		string(run.StallPolicy),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

const selectRuns = `
	SELECT id, dataset, started_at, duration_ms, providers, committed, contributing, items, days, value, stall_policy
	FROM runs`

// Runs lists runs, newest first. An empty dataset lists every dataset.
func (s *Store) Runs(ctx context.Context, dataset string) ([]*Run, error) {
	query := selectRuns
	args := []any{}
	if dataset != "" {
		query += ` WHERE dataset = ?`
		args = append(args, dataset)
	}
	query += ` ORDER BY started_at DESC, id`

	return s.query(ctx, query, args...)
}

// Best returns the highest-value run of every dataset, ordered by dataset.
// Ties go to the earliest run.
func (s *Store) Best(ctx context.Context) ([]*Run, error) {
	return s.query(ctx, `
		SELECT id, dataset, started_at, duration_ms, providers, committed, contributing, items, days, value, stall_policy
		FROM (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY dataset ORDER BY value DESC, started_at ASC, id ASC
			) AS rn
			FROM runs
		)
		WHERE rn = 1
		ORDER BY dataset`)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			run     Run
			started int64
			elapsed int64
			policy  string
		)
		if err := rows.Scan(&run.ID, &run.Dataset, &started, &elapsed,
			&run.ProvidersCount, &run.Committed, &run.Contributing,
			&run.ItemsClaimed, &run.Days, &run.Value, &policy); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = time.UnixMilli(started)
		run.Duration = time.Duration(elapsed) * time.Millisecond
		run.StallPolicy = signup.StallPolicy(policy)
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	return runs, nil
}
