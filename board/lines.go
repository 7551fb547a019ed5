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

// SetRow sets every cell of row to v.
func SetRow(g Grid, row int, v bool) error {
	if row < 0 || row >= g.Rows() {
		return fmt.Errorf("%w: row %d on %dx%d board", ErrOutOfBounds, row, g.Rows(), g.Cols())
	}
	for col := 0; col < g.Cols(); col++ {
		_ = g.Assign(row, col, v)
	}
	return nil
}

// SetCol sets every cell of col to v.
func SetCol(g Grid, col int, v bool) error {
	if col < 0 || col >= g.Cols() {
		return fmt.Errorf("%w: column %d on %dx%d board", ErrOutOfBounds, col, g.Rows(), g.Cols())
	}
	for row := 0; row < g.Rows(); row++ {
		_ = g.Assign(row, col, v)
	}
	return nil
}

// Row returns the cells of row, left to right.
func Row(g Grid, row int) ([]bool, error) {
	if row < 0 || row >= g.Rows() {
		return nil, fmt.Errorf("%w: row %d on %dx%d board", ErrOutOfBounds, row, g.Rows(), g.Cols())
	}
	return lo.Times(g.Cols(), func(col int) bool {
		v, _ := g.Get(row, col)
		return v
	}), nil
}

// Col returns the cells of col, top to bottom.
func Col(g Grid, col int) ([]bool, error) {
	if col < 0 || col >= g.Cols() {
		return nil, fmt.Errorf("%w: column %d on %dx%d board", ErrOutOfBounds, col, g.Rows(), g.Cols())
	}
	return lo.Times(g.Rows(), func(row int) bool {
		v, _ := g.Get(row, col)
		return v
	}), nil
}
