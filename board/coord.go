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
	"fmt"

	"github.com/samber/lo"
)

// Coord is a (row, col) cell coordinate.
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Positions returns the set bit positions of g in ascending order.
func Positions(g Grid) []int {
	positions := make([]int, 0, g.CountSet())
	for pos := range g.SetBits() {
		positions = append(positions, pos)
	}
	return positions
}

// Coords returns the set cells of g in row-major order.
func Coords(g Grid) []Coord {
	return lo.Map(Positions(g), func(pos int, _ int) Coord {
		// Positions come from the board itself, so they are in range.
		return Coord{Row: pos / g.Cols(), Col: pos % g.Cols()}
	})
}

// SetCoords sets every listed cell. All coordinates are validated before
// any is set, so an error leaves g unchanged.
func SetCoords(g Grid, coords ...Coord) error {
	for _, c := range coords {
		if _, err := g.Index(c.Row, c.Col); err != nil {
			return err
		}
	}
	for _, c := range coords {
		_ = g.Set(c.Row, c.Col)
	}
	return nil
}
