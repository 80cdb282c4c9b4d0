// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/someonegg/signup"
	"github.com/someonegg/signup/dataset"
	"github.com/someonegg/signup/history"
)

type solveResult struct {
	Dataset string
	Output  string
	Summary signup.Summary
	Stats   dataset.Stats
	Elapsed time.Duration
}

func doSolve(ctx context.Context, cfg *Config, inputFile, outputFile string) (*solveResult, error) {
	var ledger *history.Store
	if cfg.Ledger != "" {
		var err error
		ledger, err = history.Open(cfg.Ledger)
		if err != nil {
			return nil, err
		}
		defer ledger.Close()
	}
	return solveOne(ctx, cfg, ledger, inputFile, outputFile)
}

// solveOne runs a single dataset end to end. ledger may be nil.
func solveOne(ctx context.Context, cfg *Config, ledger *history.Store,
	inputFile, outputFile string) (*solveResult, error) {

	ds, err := cfg.Parser.ParseFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("load input file failed: %w", err)
	}

	scheduler := signup.GreedyScheduler(cfg.Scheduler)

	started := time.Now()
	solution, summ := scheduler.Schedule(ds.Catalog, ds.Registry, ds.Days)
	elapsed := time.Since(started)

	// The scheduler must never produce something the replay rejects.
	value, err := dataset.Replay(ds, solution)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule for %s: %w", ds.Name, err)
	}
	if value != summ.Value {
		return nil, fmt.Errorf("invalid schedule for %s: replayed value %d, scheduled %d",
			ds.Name, value, summ.Value)
	}

	if err := dataset.WriteSolutionFile(outputFile, solution); err != nil {
		return nil, fmt.Errorf("write output file failed: %w", err)
	}

	if ledger != nil {
		policy := signup.DefaultStallPolicy
		if cfg.Scheduler.Stall != nil {
			policy = *cfg.Scheduler.Stall
		}
		run := &history.Run{
			Dataset:     ds.Name,
			StartedAt:   started,
			Duration:    elapsed,
			StallPolicy: policy,
			Summary:     summ,
		}
		if err := ledger.Record(ctx, run); err != nil {
			return nil, err
		}
	}

	return &solveResult{
		Dataset: ds.Name,
		Output:  outputFile,
		Summary: summ,
		Stats:   ds.Stats,
		Elapsed: elapsed,
	}, nil
}

func report(w io.Writer, r *solveResult) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s: score %d, %d/%d providers, %d items, %v\n",
		r.Dataset, r.Summary.Value, r.Summary.Contributing, r.Summary.ProvidersCount,
		r.Summary.ItemsClaimed, r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "%+v\n", r.Summary)
	if r.Stats.SkippedLines > 0 || r.Stats.IncompleteTail {
		fmt.Fprintf(w, "%+v\n", r.Stats)
	}
}
