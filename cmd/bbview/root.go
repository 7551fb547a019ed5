// Copyright 2025 go-bitboard Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bitboard/board"
	"github.com/ajroetker/go-bitboard/board/contrib/render"
)

type options struct {
	rows      int
	cols      int
	set       []string
	fillRows  []int
	fillCols  []int
	neighbors []string
	color     bool
	dynamic   bool
	verbose   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "bbview",
		Short:         "Build a bitboard from flags and print it",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			logger := newLogger(stderr, opts.verbose)
			if err := run(opts, stdout, logger); err != nil {
				level.Error(logger).Log("msg", "failed to build board", "err", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.rows, "rows", 8, "number of rows")
	flags.IntVar(&opts.cols, "cols", 8, "number of columns")
	flags.StringArrayVar(&opts.set, "set", nil, "cell to set as row,col (repeatable)")
	flags.IntSliceVar(&opts.fillRows, "row", nil, "row to fill (repeatable)")
	flags.IntSliceVar(&opts.fillCols, "col", nil, "column to fill (repeatable)")
	flags.StringArrayVar(&opts.neighbors, "neighbors", nil, "set all neighbours of row,col (repeatable)")
	flags.BoolVar(&opts.color, "color", false, "colour the output with ANSI codes")
	flags.BoolVar(&opts.dynamic, "dynamic", false, "always use the dynamic representation")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details")
	return cmd
}

func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	allow := level.AllowInfo()
	if verbose {
		allow = level.AllowDebug()
	}
	return level.NewFilter(logger, allow)
}

func run(opts *options, out io.Writer, logger log.Logger) error {
	g, err := newGrid(opts.rows, opts.cols, opts.dynamic)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "board allocated", "type", fmt.Sprintf("%T", g),
		"popcount", board.CurrentPopCount())

	for _, s := range opts.set {
		c, err := parseCoord(s)
		if err != nil {
			return err
		}
		if err := g.Set(c.Row, c.Col); err != nil {
			return err
		}
	}
	for _, row := range opts.fillRows {
		if err := board.SetRow(g, row, true); err != nil {
			return err
		}
	}
	for _, col := range opts.fillCols {
		if err := board.SetCol(g, col, true); err != nil {
			return err
		}
	}
	for _, s := range opts.neighbors {
		c, err := parseCoord(s)
		if err != nil {
			return err
		}
		if err := board.SetAllNeighbors(g, c.Row, c.Col, true); err != nil {
			return err
		}
	}

	if opts.color {
		fmt.Fprint(out, render.Color(g, "green", "dark_gray"))
	} else {
		fmt.Fprint(out, render.Text(g))
	}
	level.Info(logger).Log("msg", "board built", "rows", g.Rows(), "cols", g.Cols(),
		"capacity", g.Capacity(), "set", g.CountSet())
	return nil
}

func newGrid(rows, cols int, dynamic bool) (board.Grid, error) {
	if !dynamic {
		return board.New(rows, cols)
	}
	b, err := board.NewDynamic(rows, cols)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// parseCoord parses "row,col".
func parseCoord(s string) (board.Coord, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return board.Coord{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return board.Coord{}, fmt.Errorf("coordinate %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return board.Coord{}, fmt.Errorf("coordinate %q: col: %w", s, err)
	}
	return board.Coord{Row: row, Col: col}, nil
}
