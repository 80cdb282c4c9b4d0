// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signup

// AdaptiveScorer estimates the value density of signing up a provider now:
//
//	unclaimed * (capacity + count)^2 / ((count - count/remaining) + lead^2)
//
// Long lead times are penalized quadratically, large catalogs weakly.
type AdaptiveScorer struct{}

func (AdaptiveScorer) Score(p *Provider, remaining int, catalog *Catalog, claimed ClaimView) float64 {
	if remaining <= p.LeadTime || p.ItemCount <= 0 {
		return 0.0
	}

	unclaimed := UnclaimedValue(p, catalog, claimed)
	if unclaimed <= 0 {
		return 0.0
	}

	count := float64(p.ItemCount)
	lead := float64(p.LeadTime)
	size := float64(p.Capacity) + count

	den := (count - count/float64(remaining)) + lead*lead
	// Only reachable on the last day with a zero lead time.
	if den <= 0.0 {
		den = 1.0
	}

	return float64(unclaimed) * size * size / den
}

// UnclaimedValue sums the values of the provider's items nobody claimed yet.
func UnclaimedValue(p *Provider, catalog *Catalog, claimed ClaimView) int64 {
	var total int64
	for _, item := range p.Items {
		if !claimed.Claimed(item) {
			total += catalog.Value(item)
		}
	}
	return total
}
