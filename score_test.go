// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package signup

import (
	"math"
	"testing"
)

func TestAdaptiveScorer(t *testing.T) {
	catalog := makeCatalog(2, 3, 5)

	cases := []struct {
		name      string
		provider  *Provider
		remaining int
		claimed   []int
		want      float64
	}{
		{
			name:      "AllUnclaimed",
			provider:  makeProvider(2, 3, 2, 1, 0),
			remaining: 4,
			want:      10.0 * 36.0 / 6.25,
		},
		{
			name:      "SomeClaimed",
			provider:  makeProvider(2, 3, 2, 1, 0),
			remaining: 4,
			claimed:   []int{2},
			want:      5.0 * 36.0 / 6.25,
		},
		{
			name:      "AllClaimed",
			provider:  makeProvider(2, 3, 2, 1, 0),
			remaining: 4,
			claimed:   []int{0, 1, 2},
			want:      0.0,
		},
		{
			name:      "LeadEqualsRemaining",
			provider:  makeProvider(2, 3, 2, 1, 0),
			remaining: 2,
			want:      0.0,
		},
		{
			name:      "EmptyProvider",
			provider:  makeProvider(0, 3),
			remaining: 4,
			want:      0.0,
		},
		{
			name:      "LastDayNoLead",
			provider:  makeProvider(0, 0, 0),
			remaining: 1,
			want:      2.0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			claims := NewClaimState(catalog.Len())
			for _, item := range c.claimed {
				claims.Claim(item)
			}
			got := AdaptiveScorer{}.Score(c.provider, c.remaining, catalog, claims)
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAdaptiveScorer_NominalCount(t *testing.T) {
	catalog := makeCatalog(4)

	// Declared count 3 with only one item listed.
	p := makeProvider(1, 1, 0)
	p.ItemCount = 3

	got := AdaptiveScorer{}.Score(p, 3, catalog, NewClaimState(1))
	want := 4.0 * 16.0 / (3.0 - 1.0 + 1.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestClaimState(t *testing.T) {
	claims := NewClaimState(3)
	if !claims.Claim(1) {
		t.Error("Expected first claim to succeed")
	}
	if claims.Claim(1) {
		t.Error("Expected second claim to fail")
	}
	if !claims.Claimed(1) || claims.Claimed(0) {
		t.Error("Unexpected claim flags")
	}
	if claims.Count() != 1 {
		t.Errorf("Expected count 1, got %d", claims.Count())
	}

	signups := NewSignupState(2)
	signups.SignUp(0)
	if signups.SignUp(0) {
		t.Error("Expected second signup to fail")
	}
	if signups.Remaining() != 1 {
		t.Errorf("Expected 1 remaining, got %d", signups.Remaining())
	}
}
