// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/someonegg/signup/history"
)

var batchCmd = &cli.Command{
	Name:      "batch",
	Usage:     "Solve several datasets concurrently",
	Aliases:   []string{"b"},
	ArgsUsage: "<input path>...",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "out-dir",
			Required: true,
			Usage:    "specify the directory for <dataset>.out files",
		},
		&cli.IntFlag{
			Name:  "jobs",
			Value: runtime.GOMAXPROCS(0),
			Usage: "specify how many datasets run at once",
		},
	}, commonFlags()...),
	Action: func(ctx *cli.Context) error {
		var (
			inputs = ctx.Args().Slice()
			outDir = ctx.String("out-dir")
			jobs   = ctx.Int("jobs")
		)
		if len(inputs) == 0 {
			return cli.Exit("usage: signup-solve batch --out-dir <dir> <input path>...", 2)
		}
		if jobs <= 0 {
			return errors.New("invalid jobs")
		}

		outputs, err := outputPaths(inputs, outDir)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}

		cfg, err := configFromFlags(ctx)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}

		results, err := doBatch(ctx, cfg, inputs, outputs, jobs)
		for _, result := range results {
			if result != nil {
				report(ctx.App.Writer, result)
			}
		}
		return err
	},
}

// outputPaths maps every input to <outDir>/<base>.out and rejects inputs
// that would share an output file.
func outputPaths(inputs []string, outDir string) ([]string, error) {
	outputs := make([]string, len(inputs))
	owners := make(map[string]string, len(inputs))
	for i, input := range inputs {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		output := filepath.Join(outDir, base+".out")
		if owner, ok := owners[output]; ok {
			return nil, fmt.Errorf("inputs %s and %s both write %s", owner, input, output)
		}
		owners[output] = input
		outputs[i] = output
	}
	return outputs, nil
}

// doBatch solves every input on its own goroutine, at most jobs at a time.
// Results keep the input order; a failed input leaves a nil slot.
func doBatch(ctx *cli.Context, cfg *Config, inputs, outputs []string, jobs int) ([]*solveResult, error) {
	var ledger *history.Store
	if cfg.Ledger != "" {
		var err error
		ledger, err = history.Open(cfg.Ledger)
		if err != nil {
			return nil, err
		}
		defer ledger.Close()
	}

	results := make([]*solveResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx.Context)
	g.SetLimit(jobs)
	for i, input := range inputs {
		i, input, output := i, input, outputs[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := solveOne(gctx, cfg, ledger, input, output)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	return results, g.Wait()
}
