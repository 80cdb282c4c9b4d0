// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signup

import (
	"io"
	"log/slog"
)

// Options tunes the greedy scheduler. Nil fields take their defaults.
type Options struct {
	Stall *StallPolicy `yaml:"stall"`

	Scorer Scorer       `yaml:"-"`
	Logger *slog.Logger `yaml:"-"`
}

type greedyScheduler struct {
	stall  StallPolicy
	scorer Scorer
	logger *slog.Logger
}

func GreedyScheduler(opts Options) Scheduler {
	s := greedyScheduler{
		stall:  DefaultStallPolicy,
		scorer: AdaptiveScorer{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if opts.Stall != nil {
		s.stall = *opts.Stall
	}
	if opts.Scorer != nil {
		s.scorer = opts.Scorer
	}
	if opts.Logger != nil {
		s.logger = opts.Logger
	}
	return s
}

func (s greedyScheduler) Schedule(catalog *Catalog, registry *Registry, days int) (solution Solution, summary Summary) {
	claims := NewClaimState(catalog.Len())
	signups := NewSignupState(registry.Len())

	summ := Summary{
		ProvidersCount: registry.Len(),
		ItemsCount:     catalog.Len(),
		Days:           days,
		LastSignupDay:  -1,
	}

	next := 0
	for next < days {
		day := next
		remaining := days - day

		best, score := s.pick(catalog, registry, signups, claims, remaining)
		if best < 0 {
			s.logger.Debug("no candidate left", "day", day, "remaining", remaining,
				"unsigned", signups.Remaining())
			break
		}

		provider := registry.Providers[best]
		signups.SignUp(best)
		summ.Committed++

		items := claimItems(provider, claims)
		if len(items) == 0 {
			summ.Stalls++
			s.logger.Debug("provider contributes nothing", "day", day,
				"provider", best, "score", score, "policy", string(s.stall))
			if s.stall == StallStop {
				break
			}
			continue
		}

		solution = append(solution, Entry{
			ProviderID: best,
			Items:      items,
			Day:        day,
			Score:      score,
		})
		summ.Contributing++
		summ.LastSignupDay = day
		next += provider.LeadTime

		s.logger.Debug("provider signed up", "day", day, "provider", best,
			"score", score, "items", len(items), "next", next)
	}

	summ.NextEligibleDay = next
	summ.ItemsClaimed = claims.Count()
	summ.Value = solution.Value(catalog)

	return solution, summ
}

// pick returns the best positive-scoring unsigned provider, lowest id on
// ties, or -1 when there is none.
func (s greedyScheduler) pick(catalog *Catalog, registry *Registry,
	signups *SignupState, claims ClaimView, remaining int) (int, float64) {

	best, bestScore := -1, 0.0
	for i, provider := range registry.Providers {
		if signups.SignedUp(i) {
			continue
		}
		score := s.scorer.Score(provider, remaining, catalog, claims)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, bestScore
}

// claimItems claims every unclaimed item of the provider, keeping its
// value-descending order.
func claimItems(provider *Provider, claims *ClaimState) []int {
	var items []int
	for _, item := range provider.Items {
		if claims.Claim(item) {
			items = append(items, item)
		}
	}
	return items
}
