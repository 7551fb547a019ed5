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
	"math"
)

// Index converts (row, col) on a rows x cols board to its bit position,
// row*cols + col.
func Index(row, col, rows, cols int) (int, error) {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, row, col, rows, cols)
	}
	return row*cols + col, nil
}

// ReverseIndex converts a bit position on a rows x cols board back to
// (row, col). It is the inverse of Index.
func ReverseIndex(pos, rows, cols int) (row, col int, err error) {
	if pos < 0 || rows <= 0 || cols <= 0 || pos >= rows*cols {
		return 0, 0, fmt.Errorf("%w: position %d on %dx%d board", ErrOutOfBounds, pos, rows, cols)
	}
	return pos / cols, pos % cols, nil
}

// checkDims validates board dimensions and returns the cell count.
func checkDims(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if cols > math.MaxInt/rows {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, rows, cols)
	}
	return rows * cols, nil
}

// checkPos validates a bit position against a capacity.
func checkPos(pos, capacity int) error {
	if pos < 0 || pos >= capacity {
		return fmt.Errorf("%w: position %d, capacity %d", ErrOutOfBounds, pos, capacity)
	}
	return nil
}

// sameShape reports a dimension mismatch between two boards.
func sameShape(rows, cols, otherRows, otherCols int) error {
	if rows != otherRows || cols != otherCols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, rows, cols, otherRows, otherCols)
	}
	return nil
}
