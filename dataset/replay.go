// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"

	"github.com/someonegg/signup"
)

// Replay checks the solution against the dataset and returns the value it
// realizes. Entries sign up back to back from day 0, and each one needs a
// day left after its lead time.
func Replay(ds *Dataset, solution signup.Solution) (int64, error) {
	var (
		claims  = signup.NewClaimState(ds.Catalog.Len())
		signups = signup.NewSignupState(ds.Registry.Len())
		day     = 0
		value   int64
	)

	for i, entry := range solution {
		fail := func(format string, args ...interface{}) error {
			return &ReplayError{Entry: i, Provider: entry.ProviderID, Reason: fmt.Sprintf(format, args...)}
		}

		if entry.ProviderID < 0 || entry.ProviderID >= ds.Registry.Len() {
			return 0, fail("unknown provider")
		}
		if !signups.SignUp(entry.ProviderID) {
			return 0, fail("provider signed up twice")
		}
		provider := ds.Registry.Providers[entry.ProviderID]

		if remaining := ds.Days - day; remaining <= provider.LeadTime {
			return 0, fail("signup on day %d with lead time %d exceeds %d days",
				day, provider.LeadTime, ds.Days)
		}

		offered := make(map[int]bool, len(provider.Items))
		for _, item := range provider.Items {
			offered[item] = true
		}
		for _, item := range entry.Items {
			if item < 0 || item >= ds.Catalog.Len() {
				return 0, fail("unknown item %d", item)
			}
			if !offered[item] {
				return 0, fail("item %d not offered", item)
			}
			if !claims.Claim(item) {
				return 0, fail("item %d claimed twice", item)
			}
			value += ds.Catalog.Value(item)
		}

		day += provider.LeadTime
	}

	return value, nil
}
