// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/someonegg/signup"
)

// Parser reads the problem format best-effort: a line that does not parse
// as the expected record is skipped and the parser waits for the next line
// of the same kind. Skipping a line can desynchronize the provider stream.
type Parser struct {
	// When set, duplicate item ids in a provider list are kept.
	KeepDuplicates bool `yaml:"keep_duplicates"`

	Logger *slog.Logger `yaml:"-"`
}

func (p *Parser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}

func (p *Parser) ParseFile(file string) (*Dataset, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	ds.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return ds, nil
}

func (p *Parser) Parse(r io.Reader) (*Dataset, error) {
	log := p.logger()

	var (
		ds      = &Dataset{}
		values  []int64
		pending *signup.Provider
		state   = recordHeader
	)
	ds.Registry = &signup.Registry{}

	skip := func(line int, err error) {
		ds.Stats.SkippedLines++
		log.Warn("skip malformed line", "err", &ParseError{Line: line, Record: state, Err: err})
	}

	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, rerr
		}

		fields := strings.Fields(line)
		if len(fields) == 0 && state == recordValues &&
			ds.Stats.DeclaredItems == 0 && rerr == nil {
			// an empty catalog still owns its blank values line
			ds.Catalog = &signup.Catalog{}
			state = recordProviderHeader
		} else if len(fields) == 0 && state == recordProviderItems &&
			pending.ItemCount == 0 && rerr == nil {
			// an empty provider still owns its blank item line
			ds.Registry.Providers = append(ds.Registry.Providers, pending)
			pending = nil
			state = recordProviderHeader
		} else if len(fields) > 0 {
			nums, err := parseInts(fields)
			if err != nil {
				skip(lineNo, err)
			} else {
				switch state {
				case recordHeader:
					if len(nums) != 3 {
						skip(lineNo, ErrFieldCount)
						break
					}
					ds.Stats.DeclaredItems = nums[0]
					ds.Stats.DeclaredProviders = nums[1]
					ds.Days = nums[2]
					state = recordValues

				case recordValues:
					values = make([]int64, len(nums))
					for i, n := range nums {
						values[i] = int64(n)
					}
					if len(values) != ds.Stats.DeclaredItems {
						log.Warn("item count differs from header",
							"declared", ds.Stats.DeclaredItems, "values", len(values))
					}
					ds.Catalog = &signup.Catalog{Values: values}
					state = recordProviderHeader

				case recordProviderHeader:
					if len(nums) != 3 {
						skip(lineNo, ErrFieldCount)
						break
					}
					pending = &signup.Provider{
						ID:        ds.Registry.Len(),
						ItemCount: nums[0],
						LeadTime:  nums[1],
						Capacity:  nums[2],
					}
					state = recordProviderItems

				case recordProviderItems:
					pending.Items = p.providerItems(ds, pending.ID, nums)
					ds.Registry.Providers = append(ds.Registry.Providers, pending)
					pending = nil
					state = recordProviderHeader
				}
			}
		}

		if rerr == io.EOF {
			break
		}
	}

	switch state {
	case recordHeader:
		return nil, ErrNoHeader
	case recordValues:
		return nil, ErrNoValues
	case recordProviderItems:
		ds.Stats.IncompleteTail = true
		log.Warn("dropping provider without item line", "provider", pending.ID)
	}

	if n := ds.Registry.Len(); n != ds.Stats.DeclaredProviders {
		log.Warn("provider count differs from header",
			"declared", ds.Stats.DeclaredProviders, "parsed", n)
	}

	return ds, nil
}

// providerItems filters unknown and duplicate ids, then orders the rest by
// descending value, keeping the input order on ties.
func (p *Parser) providerItems(ds *Dataset, provider int, ids []int) []int {
	var (
		items = make([]int, 0, len(ids))
		seen  = make(map[int]bool, len(ids))
		n     = ds.Catalog.Len()
	)

	for _, id := range ids {
		if id >= n {
			ds.Stats.UnknownItems++
			p.logger().Warn("dropping unknown item", "provider", provider, "item", id)
			continue
		}
		if seen[id] {
			ds.Stats.DuplicateItems++
			if !p.KeepDuplicates {
				continue
			}
		}
		seen[id] = true
		items = append(items, id)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return ds.Catalog.Value(items[i]) > ds.Catalog.Value(items[j])
	})

	return items
}

func parseInts(fields []string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, ErrNegative
		}
		nums[i] = n
	}
	return nums, nil
}
