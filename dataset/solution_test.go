// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/someonegg/signup"
)

func solveExample(t *testing.T) (*Dataset, signup.Solution) {
	t.Helper()
	ds, err := (&Parser{}).ParseFile("testdata/a_example.txt")
	require.NoError(t, err)
	solution, _ := signup.GreedyScheduler(signup.Options{}).Schedule(ds.Catalog, ds.Registry, ds.Days)
	return ds, solution
}

func TestWriteSolution_Golden(t *testing.T) {
	_, solution := solveExample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, solution))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "a_example", buf.Bytes())
}

func TestWriteSolution_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, nil))
	assert.Equal(t, "0\n", buf.String())
}

func TestReadSolution_RoundTrip(t *testing.T) {
	_, solution := solveExample(t)

	file := filepath.Join(t.TempDir(), "a_example.out")
	require.NoError(t, WriteSolutionFile(file, solution))

	read, err := ReadSolutionFile(file)
	require.NoError(t, err)
	require.Len(t, read, len(solution))
	for i := range solution {
		assert.Equal(t, solution[i].ProviderID, read[i].ProviderID)
		assert.Equal(t, solution[i].Items, read[i].Items)
	}
}

func TestReadSolution_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "Empty", input: "", want: io.ErrUnexpectedEOF},
		{name: "Truncated", input: "2\n0 1\n3\n", want: io.ErrUnexpectedEOF},
		{name: "CountMismatch", input: "1\n0 2\n3\n", want: ErrFieldCount},
		{name: "BadHeader", input: "1 2\n", want: ErrFieldCount},
		{name: "BadPair", input: "1\n0\n3\n", want: ErrFieldCount},
		{name: "Negative", input: "1\n-1 1\n3\n", want: ErrNegative},
		{name: "HugeCount", input: "999999999999999999\n0 1\n0\n", want: io.ErrUnexpectedEOF},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ReadSolution(strings.NewReader(c.input))
			assert.ErrorIs(t, err, c.want)
		})
	}

	_, err := ReadSolution(strings.NewReader("x\n"))
	assert.Error(t, err)
}
