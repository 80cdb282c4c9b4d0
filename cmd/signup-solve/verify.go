// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/someonegg/signup/dataset"
)

var verifyCmd = &cli.Command{
	Name:      "verify",
	Usage:     "Replay a solution file against its dataset and print the score",
	ArgsUsage: "<input path> <solution path>",
	Flags:     parserFlags(),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return cli.Exit("usage: signup-solve verify <input path> <solution path>", 2)
		}
		var (
			inputFile    = ctx.Args().Get(0)
			solutionFile = ctx.Args().Get(1)
		)

		cfg, err := configFromFlags(ctx)
		if err != nil {
			return err
		}
		ds, err := cfg.Parser.ParseFile(inputFile)
		if err != nil {
			return fmt.Errorf("load input file failed: %w", err)
		}

		solution, err := dataset.ReadSolutionFile(solutionFile)
		if err != nil {
			return fmt.Errorf("load solution file failed: %w", err)
		}

		value, err := dataset.Replay(ds, solution)
		if err != nil {
			return fmt.Errorf("invalid solution: %w", err)
		}

		message.NewPrinter(language.English).Fprintf(ctx.App.Writer,
			"%s: score %d, %d providers\n", ds.Name, value, len(solution))
		return nil
	},
}
