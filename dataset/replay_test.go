// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/someonegg/signup"
)

func TestReplay_Example(t *testing.T) {
	ds, solution := solveExample(t)

	value, err := Replay(ds, solution)
	require.NoError(t, err)
	assert.Equal(t, int64(21), value)
	assert.Equal(t, solution.Value(ds.Catalog), value)
}

func TestReplay_Rejects(t *testing.T) {
	ds, err := (&Parser{}).ParseFile("testdata/a_example.txt")
	require.NoError(t, err)

	cases := []struct {
		name     string
		solution signup.Solution
		entry    int
	}{
		{
			name:     "UnknownProvider",
			solution: signup.Solution{{ProviderID: 2, Items: []int{0}}},
		},
		{
			name: "ProviderTwice",
			solution: signup.Solution{
				{ProviderID: 0, Items: []int{0}},
				{ProviderID: 0, Items: []int{1}},
			},
			entry: 1,
		},
		{
			name:     "ItemNotOffered",
			solution: signup.Solution{{ProviderID: 1, Items: []int{4}}},
		},
		{
			name:     "UnknownItem",
			solution: signup.Solution{{ProviderID: 1, Items: []int{9}}},
		},
		{
			name: "ItemTwice",
			solution: signup.Solution{
				{ProviderID: 0, Items: []int{3}},
				{ProviderID: 1, Items: []int{3}},
			},
			entry: 1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Replay(ds, c.solution)
			var re *ReplayError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, c.entry, re.Entry)
		})
	}
}

func TestReplay_LeadTimeBudget(t *testing.T) {
	ds := parse(t, &Parser{}, "2 2 5\n1 1\n1 3 1\n0\n1 2 1\n1\n")

	// 3 + 2 lead days consume the whole budget.
	_, err := Replay(ds, signup.Solution{
		{ProviderID: 0, Items: []int{0}},
		{ProviderID: 1, Items: []int{1}},
	})
	var re *ReplayError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 1, re.Entry)

	value, err := Replay(ds, signup.Solution{
		{ProviderID: 1, Items: []int{1}},
		{ProviderID: 0, Items: []int{0}},
	})
	assert.Error(t, err)
	assert.Zero(t, value)

	value, err = Replay(ds, signup.Solution{{ProviderID: 1, Items: []int{1}}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)
}
