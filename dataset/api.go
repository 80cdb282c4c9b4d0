// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads signup problems and reads, writes and replays
// their solutions in the line-oriented integer format.
package dataset

import (
	"errors"
	"fmt"

	"github.com/someonegg/signup"
)

type Dataset struct {
	Name     string
	Days     int
	Catalog  *signup.Catalog
	Registry *signup.Registry

	Stats Stats
}

// Stats describes what the best-effort parser had to work around.
type Stats struct {
	DeclaredItems     int  `yaml:"declared_items"`
	DeclaredProviders int  `yaml:"declared_providers"`
	SkippedLines      int  `yaml:"skipped_lines"`
	DuplicateItems    int  `yaml:"duplicate_items"`
	UnknownItems      int  `yaml:"unknown_items"`
	IncompleteTail    bool `yaml:"incomplete_tail"`
}

var (
	ErrFieldCount = errors.New("unexpected field count")
	ErrNegative   = errors.New("negative number")
	ErrNoHeader   = errors.New("missing header line")
	ErrNoValues   = errors.New("missing item values line")
)

type recordKind string

const (
	recordHeader         recordKind = "header"
	recordValues         recordKind = "values"
	recordProviderHeader recordKind = "provider header"
	recordProviderItems  recordKind = "provider items"
)

// ParseError describes one input line the parser skipped.
type ParseError struct {
	Line   int
	Record recordKind
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Record, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReplayError reports why a solution is not valid for a dataset.
type ReplayError struct {
	Entry    int
	Provider int
	Reason   string
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("entry %d (provider %d): %s", e.Entry, e.Provider, e.Reason)
}
