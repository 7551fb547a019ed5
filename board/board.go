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

import "iter"

// Grid is the representation-agnostic view of a board: cell access,
// counting, iteration and index conversion. *Fixed[W] and *Dynamic both
// implement it.
type Grid interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Capacity returns the number of cells, Rows()*Cols().
	Capacity() int

	// Index returns the bit position of (row, col), or ErrOutOfBounds.
	Index(row, col int) (int, error)

	// ReverseIndex returns the (row, col) of a bit position, or
	// ErrOutOfBounds.
	ReverseIndex(pos int) (row, col int, err error)

	// Get reports whether the cell at (row, col) is set.
	Get(row, col int) (bool, error)

	// Set sets the cell at (row, col). Setting a set cell is a no-op.
	Set(row, col int) error

	// Clear clears the cell at (row, col). Clearing a clear cell is a no-op.
	Clear(row, col int) error

	// Assign sets the cell at (row, col) to v.
	Assign(row, col int, v bool) error

	// Fill sets every cell to v.
	Fill(v bool)

	// CountSet returns the number of set cells.
	CountSet() int

	// SetBits returns the positions of set cells in ascending order. Every
	// call starts a new scan.
	SetBits() iter.Seq[int]
}

// Board is a Grid that can be combined with boards of its own
// representation B. The type parameter keeps combinators closed over one
// representation: a Fixed[W64] combines only with Fixed[W64] values, a
// Dynamic only with Dynamic values.
//
// Generic code over either representation constrains the pointer type, so
// combinator results can be used as boards again:
//
//	func Overlap[B any, P interface {
//		*B
//		board.Board[B]
//	}](a P, b B) (int, error) {
//		both, err := a.Intersection(b)
//		if err != nil {
//			return 0, err
//		}
//		return P(&both).CountSet(), nil
//	}
type Board[B any] interface {
	Grid

	// Union returns the cells set in either board.
	Union(other B) (B, error)

	// Intersection returns the cells set in both boards.
	Intersection(other B) (B, error)

	// Difference returns the cells set in the receiver but not in other.
	Difference(other B) (B, error)

	// Xor returns the cells set in exactly one board.
	Xor(other B) (B, error)
}

var (
	_ Board[Fixed8]   = (*Fixed8)(nil)
	_ Board[Fixed16]  = (*Fixed16)(nil)
	_ Board[Fixed32]  = (*Fixed32)(nil)
	_ Board[Fixed64]  = (*Fixed64)(nil)
	_ Board[Fixed128] = (*Fixed128)(nil)
	_ Board[Dynamic]  = (*Dynamic)(nil)
)

// New returns an empty rows x cols board in the smallest representation
// that holds it: a *Fixed[W] for up to 128 cells, a *Dynamic beyond.
//
// Use NewFixed directly when the size is known while writing the code; New
// is for sizes that arrive at run time.
func New(rows, cols int) (Grid, error) {
	capacity, err := checkDims(rows, cols)
	if err != nil {
		return nil, err
	}
	switch WidthFor(capacity) {
	case 8:
		return newFixedGrid[W8](rows, cols)
	case 16:
		return newFixedGrid[W16](rows, cols)
	case 32:
		return newFixedGrid[W32](rows, cols)
	case 64:
		return newFixedGrid[W64](rows, cols)
	case 128:
		return newFixedGrid[W128](rows, cols)
	}
	b, err := NewDynamic(rows, cols)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func newFixedGrid[W Word[W]](rows, cols int) (Grid, error) {
	b, err := NewFixed[W](rows, cols)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
