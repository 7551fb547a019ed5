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

// Board edges are hard: neighbours that would fall outside the board are
// skipped rather than wrapped to the opposite edge.

var (
	cardinalOffsets = []Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalOffsets = []Coord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// SetCardinalNeighbors sets the cells above, below, left and right of
// (row, col) to v. The cell itself is left alone.
func SetCardinalNeighbors(g Grid, row, col int, v bool) error {
	return assignOffsets(g, row, col, v, cardinalOffsets)
}

// SetDiagonals sets the four diagonal neighbours of (row, col) to v.
func SetDiagonals(g Grid, row, col int, v bool) error {
	return assignOffsets(g, row, col, v, diagonalOffsets)
}

// SetAllNeighbors sets the eight cardinal and diagonal neighbours of
// (row, col) to v.
func SetAllNeighbors(g Grid, row, col int, v bool) error {
	if err := assignOffsets(g, row, col, v, cardinalOffsets); err != nil {
		return err
	}
	return assignOffsets(g, row, col, v, diagonalOffsets)
}

// Neighbors returns the in-board cardinal and diagonal neighbours of
// (row, col) in row-major order.
func Neighbors(g Grid, row, col int) ([]Coord, error) {
	if _, err := g.Index(row, col); err != nil {
		return nil, err
	}
	var out []Coord
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < g.Rows() && c >= 0 && c < g.Cols() {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out, nil
}

func assignOffsets(g Grid, row, col int, v bool, offsets []Coord) error {
	if _, err := g.Index(row, col); err != nil {
		return err
	}
	for _, off := range offsets {
		r, c := row+off.Row, col+off.Col
		if r < 0 || r >= g.Rows() || c < 0 || c >= g.Cols() {
			continue
		}
		_ = g.Assign(r, c, v)
	}
	return nil
}
