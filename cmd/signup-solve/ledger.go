// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/someonegg/signup/history"
)

var historyCmd = &cli.Command{
	Name:  "history",
	Usage: "List recorded runs",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Required: true,
			Usage:    "specify the sqlite ledger",
		},
		&cli.StringFlag{
			Name:  "dataset",
			Usage: "only list runs of this dataset",
		},
		&cli.BoolFlag{
			Name:  "best",
			Usage: "list the best run per dataset",
		},
	},
	Action: func(ctx *cli.Context) error {
		ledger, err := history.Open(ctx.String("db"))
		if err != nil {
			return err
		}
		defer ledger.Close()

		var runs []*history.Run
		if ctx.Bool("best") {
			runs, err = ledger.Best(ctx.Context)
		} else {
			runs, err = ledger.Runs(ctx.Context, ctx.String("dataset"))
		}
		if err != nil {
			return err
		}

		p := message.NewPrinter(language.English)
		p.Fprintf(ctx.App.Writer, "%-36s  %-16s  %-19s  %14s  %9s  %6s\n",
			"ID", "DATASET", "STARTED", "SCORE", "PROVIDERS", "STALL")
		for _, run := range runs {
			p.Fprintf(ctx.App.Writer, "%-36s  %-16s  %-19s  %14d  %9d  %6s\n",
				run.ID, run.Dataset, run.StartedAt.Format(time.DateTime),
				run.Value, run.Contributing, run.StallPolicy)
		}
		return nil
	},
}
