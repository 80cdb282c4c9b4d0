// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/someonegg/signup"
	"github.com/someonegg/signup/dataset"
)

type Config struct {
	Scheduler signup.Options `yaml:"scheduler"`
	Parser    dataset.Parser `yaml:"parser"`
	Verbose   bool           `yaml:"verbose"`
	Ledger    string         `yaml:"ledger"`
}

func loadConfig(file string) (*Config, error) {
	cfg := &Config{}
	if file == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}

	return cfg, nil
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "specify the yaml config file",
		},
		&cli.StringFlag{
			Name:  "stall",
			Usage: "what to do when a signed up provider adds nothing (retry|stop)",
		},
		&cli.BoolFlag{
			Name:  "keep-duplicates",
			Usage: "keep duplicate item ids in provider lists",
		},
		&cli.StringFlag{
			Name:  "record",
			Usage: "specify the sqlite ledger to record runs in",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every scheduling decision",
		},
	}
}

// parserFlags are the common flags that affect how datasets are read.
func parserFlags() []cli.Flag {
	var flags []cli.Flag
	for _, flag := range commonFlags() {
		switch flag.Names()[0] {
		case "config", "keep-duplicates", "verbose":
			flags = append(flags, flag)
		}
	}
	return flags
}

// configFromFlags loads the config file and lets explicit flags override it.
func configFromFlags(ctx *cli.Context) (*Config, error) {
	cfg, err := loadConfig(ctx.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config file failed: %w", err)
	}

	if ctx.IsSet("stall") {
		stall := signup.StallPolicy(ctx.String("stall"))
		cfg.Scheduler.Stall = &stall
	}
	if ctx.IsSet("keep-duplicates") {
		cfg.Parser.KeepDuplicates = ctx.Bool("keep-duplicates")
	}
	if ctx.IsSet("record") {
		cfg.Ledger = ctx.String("record")
	}
	if ctx.IsSet("verbose") {
		cfg.Verbose = ctx.Bool("verbose")
	}

	if stall := cfg.Scheduler.Stall; stall != nil &&
		*stall != signup.StallRetry && *stall != signup.StallStop {
		return nil, fmt.Errorf("invalid stall policy %q", *stall)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: level}))
	cfg.Scheduler.Logger = logger
	cfg.Parser.Logger = logger

	return cfg, nil
}
