// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const usage = "usage: signup-solve [options] <input path> <output path>"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "signup-solve",
		Usage:     "Schedule library signups to maximize delivered book value",
		ArgsUsage: "<input path> <output path>",
		Flags:     commonFlags(),
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 2 {
				return cli.Exit(usage, 2)
			}
			cfg, err := configFromFlags(ctx)
			if err != nil {
				return err
			}
			result, err := doSolve(ctx.Context, cfg, ctx.Args().Get(0), ctx.Args().Get(1))
			if err != nil {
				return err
			}
			report(ctx.App.Writer, result)
			return nil
		},
		Commands: []*cli.Command{
			batchCmd,
			verifyCmd,
			historyCmd,
		},
	}
}
