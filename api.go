// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package signup schedules the sequential signup of providers that deliver
// valued items under a shared day budget.
package signup

type Scheduler interface {
	Schedule(catalog *Catalog, registry *Registry, days int) (solution Solution, summary Summary)
}

// Catalog maps item id to value. It is read-only after load.
type Catalog struct {
	Values []int64
}

func (c *Catalog) Len() int {
	return len(c.Values)
}

func (c *Catalog) Value(item int) int64 {
	return c.Values[item]
}

type Provider struct {
	ID        int
	ItemCount int // nominal, as declared
	LeadTime  int // days
	Capacity  int // items per day, heuristic only
	Items     []int
}

// Registry holds the providers, indexed by id. It is read-only after load.
type Registry struct {
	Providers []*Provider
}

func (r *Registry) Len() int {
	return len(r.Providers)
}

// Scorer ranks a candidate provider. Scores are only compared, never
// realized; zero means "cannot contribute".
type Scorer interface {
	Score(provider *Provider, remaining int, catalog *Catalog, claimed ClaimView) float64
}

type Entry struct {
	ProviderID int
	Items      []int

	Day   int     // signup day
	Score float64 // score at commitment
}

type Solution []Entry

// Value replays the solution against the catalog.
func (s Solution) Value(catalog *Catalog) int64 {
	var total int64
	for _, entry := range s {
		for _, item := range entry.Items {
			total += catalog.Value(item)
		}
	}
	return total
}

type StallPolicy string

const (
	// StallRetry re-runs the selection on the same day once a provider
	// turned out to contribute nothing.
	StallRetry StallPolicy = "retry"
	// StallStop ends the run instead.
	StallStop StallPolicy = "stop"
)

const (
	DefaultStallPolicy = StallRetry
)

type Summary struct {
	ProvidersCount  int   `json:"providers" yaml:"providers"`
	ItemsCount      int   `json:"items" yaml:"items"`
	Days            int   `json:"days" yaml:"days"`
	Committed       int   `json:"committed" yaml:"committed"`
	Contributing    int   `json:"contributing" yaml:"contributing"`
	Stalls          int   `json:"stalls" yaml:"stalls"`
	ItemsClaimed    int   `json:"items_claimed" yaml:"items_claimed"`
	Value           int64 `json:"value" yaml:"value"`
	LastSignupDay   int   `json:"last_signup_day" yaml:"last_signup_day"`
	NextEligibleDay int   `json:"next_eligible_day" yaml:"next_eligible_day"`
}
