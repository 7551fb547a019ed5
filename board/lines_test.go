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

// grids returns the same empty rows x cols board in each representation.
func grids(t *testing.T, rows, cols int) map[string]Grid {
	t.Helper()
	fixed, err := NewFixed[W128](rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	dynamic, err := NewDynamic(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Grid{"fixed": &fixed, "dynamic": &dynamic}
}

// pattern returns the cells of g in bit-position order as 0/1.
func pattern(g Grid) []int {
	out := make([]int, g.Capacity())
	for pos := range g.SetBits() {
		out[pos] = 1
	}
	return out
}

func TestSetRowCol(t *testing.T) {
	for idx := 0; idx < 5; idx++ {
		for name, g := range grids(t, 5, 5) {
			if err := SetCol(g, idx, true); err != nil {
				t.Fatalf("%s SetCol(%d): %v", name, idx, err)
			}
			for row := 0; row < 5; row++ {
				for col := 0; col < 5; col++ {
					v, _ := g.Get(row, col)
					if v != (col == idx) {
						t.Errorf("%s SetCol(%d): Get(%d, %d) = %v", name, idx, row, col, v)
					}
				}
			}
			colVals, err := Col(g, idx)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]bool{true, true, true, true, true}, colVals); diff != "" {
				t.Errorf("%s Col(%d) (-want +got):\n%s", name, idx, diff)
			}
			_ = SetCol(g, idx, false)

			if err := SetRow(g, idx, true); err != nil {
				t.Fatalf("%s SetRow(%d): %v", name, idx, err)
			}
			for row := 0; row < 5; row++ {
				for col := 0; col < 5; col++ {
					v, _ := g.Get(row, col)
					if v != (row == idx) {
						t.Errorf("%s SetRow(%d): Get(%d, %d) = %v", name, idx, row, col, v)
					}
				}
			}
			other := (idx + 1) % 5
			rowVals, err := Row(g, other)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]bool{false, false, false, false, false}, rowVals); diff != "" {
				t.Errorf("%s Row(%d) (-want +got):\n%s", name, other, diff)
			}
		}
	}
}

func TestRowColOutOfBounds(t *testing.T) {
	for name, g := range grids(t, 2, 3) {
		if err := SetRow(g, 2, true); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s SetRow(2) err = %v", name, err)
		}
		if err := SetCol(g, -1, true); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s SetCol(-1) err = %v", name, err)
		}
		if _, err := Row(g, -1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s Row(-1) err = %v", name, err)
		}
		if _, err := Col(g, 3); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s Col(3) err = %v", name, err)
		}
		if g.CountSet() != 0 {
			t.Errorf("%s failed calls mutated the board", name)
		}
	}
}

func TestSetAllBits(t *testing.T) {
	for name, g := range grids(t, 3, 3) {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				_ = g.Assign(row, col, true)
			}
		}
		if got := g.CountSet(); got != 9 {
			t.Errorf("%s CountSet() = %d, want 9", name, got)
		}
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				_ = g.Assign(row, col, false)
			}
		}
		if got := g.CountSet(); got != 0 {
			t.Errorf("%s CountSet() = %d, want 0", name, got)
		}
	}
}
