// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/someonegg/signup"
)

// WriteSolution emits the entry count, then per entry a
// "<provider> <count>" line and a line of item ids.
func WriteSolution(w io.Writer, solution signup.Solution) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", len(solution))
	for _, entry := range solution {
		fmt.Fprintf(bw, "%d %d\n", entry.ProviderID, len(entry.Items))
		for i, item := range entry.Items {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(item))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func WriteSolutionFile(file string, solution signup.Solution) error {
	var buf bytes.Buffer
	if err := WriteSolution(&buf, solution); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0644)
}

// ReadSolution parses the format written by WriteSolution. Unlike the
// problem parser it is strict.
func ReadSolution(r io.Reader) (signup.Solution, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	lineNo := 0
	next := func() ([]int, error) {
		for sc.Scan() {
			lineNo++
			fields := strings.Fields(sc.Text())
			nums, err := parseInts(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			return nums, nil
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("line %d: %w", lineNo+1, io.ErrUnexpectedEOF)
	}

	head, err := next()
	if err != nil {
		return nil, err
	}
	if len(head) != 1 {
		return nil, fmt.Errorf("line %d: %w", lineNo, ErrFieldCount)
	}

	var solution signup.Solution
	for i := 0; i < head[0]; i++ {
		pair, err := next()
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrFieldCount)
		}
		items, err := next()
		if err != nil {
			return nil, err
		}
		if len(items) != pair[1] {
			return nil, fmt.Errorf("line %d: %w: want %d items, got %d",
				lineNo, ErrFieldCount, pair[1], len(items))
		}
		solution = append(solution, signup.Entry{
			ProviderID: pair[0],
			Items:      items,
		})
	}

	return solution, nil
}

func ReadSolutionFile(file string) (signup.Solution, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSolution(f)
}
