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

package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type neighborCase struct {
	row, col int
	want     []int
}

func runNeighborCases(t *testing.T, rows, cols int, set func(Grid, int, int, bool) error, cases []neighborCase) {
	t.Helper()
	for _, tc := range cases {
		for name, g := range grids(t, rows, cols) {
			if err := set(g, tc.row, tc.col, true); err != nil {
				t.Fatalf("%s (%d, %d): %v", name, tc.row, tc.col, err)
			}
			if diff := cmp.Diff(tc.want, pattern(g)); diff != "" {
				t.Errorf("%s (%d, %d) (-want +got):\n%s", name, tc.row, tc.col, diff)
			}
			// Clearing the same neighbours returns to empty.
			if err := set(g, tc.row, tc.col, false); err != nil {
				t.Fatal(err)
			}
			if g.CountSet() != 0 {
				t.Errorf("%s (%d, %d): clearing left %d cells", name, tc.row, tc.col, g.CountSet())
			}
		}
	}
}

func TestSetCardinalNeighbors(t *testing.T) {
	t.Run("2x2", func(t *testing.T) {
		runNeighborCases(t, 2, 2, SetCardinalNeighbors, []neighborCase{
			{0, 0, []int{0, 1, 1, 0}},
			{0, 1, []int{1, 0, 0, 1}},
			{1, 0, []int{1, 0, 0, 1}},
			{1, 1, []int{0, 1, 1, 0}},
		})
	})
	t.Run("3x3", func(t *testing.T) {
		runNeighborCases(t, 3, 3, SetCardinalNeighbors, []neighborCase{
			{0, 0, []int{0, 1, 0, 1, 0, 0, 0, 0, 0}},
			{0, 1, []int{1, 0, 1, 0, 1, 0, 0, 0, 0}},
			{0, 2, []int{0, 1, 0, 0, 0, 1, 0, 0, 0}},
			{1, 0, []int{1, 0, 0, 0, 1, 0, 1, 0, 0}},
			{1, 1, []int{0, 1, 0, 1, 0, 1, 0, 1, 0}},
			{1, 2, []int{0, 0, 1, 0, 1, 0, 0, 0, 1}},
			{2, 0, []int{0, 0, 0, 1, 0, 0, 0, 1, 0}},
			{2, 1, []int{0, 0, 0, 0, 1, 0, 1, 0, 1}},
			{2, 2, []int{0, 0, 0, 0, 0, 1, 0, 1, 0}},
		})
	})
}

func TestSetDiagonals(t *testing.T) {
	runNeighborCases(t, 3, 3, SetDiagonals, []neighborCase{
		{0, 0, []int{0, 0, 0, 0, 1, 0, 0, 0, 0}},
		{1, 1, []int{1, 0, 1, 0, 0, 0, 1, 0, 1}},
		{2, 1, []int{0, 0, 0, 1, 0, 1, 0, 0, 0}},
	})
}

func TestSetAllNeighbors(t *testing.T) {
	t.Run("2x2", func(t *testing.T) {
		runNeighborCases(t, 2, 2, SetAllNeighbors, []neighborCase{
			{0, 0, []int{0, 1, 1, 1}},
			{0, 1, []int{1, 0, 1, 1}},
			{1, 0, []int{1, 1, 0, 1}},
			{1, 1, []int{1, 1, 1, 0}},
		})
	})
	t.Run("3x3", func(t *testing.T) {
		runNeighborCases(t, 3, 3, SetAllNeighbors, []neighborCase{
			{0, 0, []int{0, 1, 0, 1, 1, 0, 0, 0, 0}},
			{0, 1, []int{1, 0, 1, 1, 1, 1, 0, 0, 0}},
			{0, 2, []int{0, 1, 0, 0, 1, 1, 0, 0, 0}},
			{1, 0, []int{1, 1, 0, 0, 1, 0, 1, 1, 0}},
			{1, 1, []int{1, 1, 1, 1, 0, 1, 1, 1, 1}},
			{1, 2, []int{0, 1, 1, 0, 1, 0, 0, 1, 1}},
			{2, 0, []int{0, 0, 0, 1, 1, 0, 0, 1, 0}},
			{2, 1, []int{0, 0, 0, 1, 1, 1, 1, 0, 1}},
			{2, 2, []int{0, 0, 0, 0, 1, 1, 0, 1, 0}},
		})
	})
}

func TestNeighborsOutOfBounds(t *testing.T) {
	for name, g := range grids(t, 3, 3) {
		for _, set := range []func(Grid, int, int, bool) error{SetCardinalNeighbors, SetDiagonals, SetAllNeighbors} {
			if err := set(g, 3, 0, true); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("%s err = %v, want ErrOutOfBounds", name, err)
			}
		}
		if _, err := Neighbors(g, 0, -1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s Neighbors err = %v, want ErrOutOfBounds", name, err)
		}
		if g.CountSet() != 0 {
			t.Errorf("%s failed calls mutated the board", name)
		}
	}
}

func TestNeighbors(t *testing.T) {
	g, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		row, col int
		want     []Coord
	}{
		{0, 0, []Coord{{0, 1}, {1, 0}, {1, 1}}},
		{1, 1, []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
		{2, 1, []Coord{{1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 2}}},
	}
	for _, tt := range tests {
		got, err := Neighbors(g, tt.row, tt.col)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Neighbors(%d, %d) (-want +got):\n%s", tt.row, tt.col, diff)
		}
	}
}
