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
	"iter"
)

// Fixed is a board stored in a single word W. The word width is part of the
// type: Fixed[W64] holds up to 64 cells and cannot be combined with a
// Fixed[W32].
//
// Fixed has value semantics; assigning a Fixed copies the board.
// The zero value is a 0x0 board on which every cell access fails.
type Fixed[W Word[W]] struct {
	word W
	rows int
	cols int
}

// Aliases naming the word width chosen for a board's capacity.
type (
	Fixed8   = Fixed[W8]
	Fixed16  = Fixed[W16]
	Fixed32  = Fixed[W32]
	Fixed64  = Fixed[W64]
	Fixed128 = Fixed[W128]
)

// NewFixed returns an empty rows x cols board stored in a W.
// It fails with ErrCapacityExceeded if rows*cols exceeds W's width.
func NewFixed[W Word[W]](rows, cols int) (Fixed[W], error) {
	var zero W
	capacity, err := checkDims(rows, cols)
	if err != nil {
		return Fixed[W]{}, err
	}
	if capacity > zero.Width() {
		return Fixed[W]{}, fmt.Errorf("%w: %dx%d needs %d bits, word has %d",
			ErrCapacityExceeded, rows, cols, capacity, zero.Width())
	}
	return Fixed[W]{rows: rows, cols: cols}, nil
}

// FixedFromWord returns a rows x cols board whose cells are the bits of w.
// Bits of w past rows*cols must be clear, otherwise ErrOutOfBounds is
// returned.
func FixedFromWord[W Word[W]](rows, cols int, w W) (Fixed[W], error) {
	b, err := NewFixed[W](rows, cols)
	if err != nil {
		return Fixed[W]{}, err
	}
	if !w.AndNot(b.mask()).IsZero() {
		return Fixed[W]{}, fmt.Errorf("%w: word has bits set past capacity %d", ErrOutOfBounds, b.Capacity())
	}
	b.word = w
	return b, nil
}

// mask returns the word with every in-board bit set.
func (b Fixed[W]) mask() W {
	return b.word.Low(b.rows * b.cols)
}

// Rows returns the number of rows.
func (b Fixed[W]) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Fixed[W]) Cols() int { return b.cols }

// Capacity returns the number of cells, rows*cols.
func (b Fixed[W]) Capacity() int { return b.rows * b.cols }

// Word returns the raw storage word.
func (b Fixed[W]) Word() W { return b.word }

// Index returns the bit position of (row, col).
func (b Fixed[W]) Index(row, col int) (int, error) {
	return Index(row, col, b.rows, b.cols)
}

// ReverseIndex returns the (row, col) of a bit position.
func (b Fixed[W]) ReverseIndex(pos int) (row, col int, err error) {
	return ReverseIndex(pos, b.rows, b.cols)
}

// Get reports whether the cell at (row, col) is set.
func (b Fixed[W]) Get(row, col int) (bool, error) {
	pos, err := b.Index(row, col)
	if err != nil {
		return false, err
	}
	return b.word.Bit(pos), nil
}

// Set sets the cell at (row, col).
func (b *Fixed[W]) Set(row, col int) error {
	pos, err := b.Index(row, col)
	if err != nil {
		return err
	}
	b.word = b.word.WithBit(pos)
	return nil
}

// Clear clears the cell at (row, col).
func (b *Fixed[W]) Clear(row, col int) error {
	pos, err := b.Index(row, col)
	if err != nil {
		return err
	}
	b.word = b.word.WithoutBit(pos)
	return nil
}

// Assign sets the cell at (row, col) to v.
func (b *Fixed[W]) Assign(row, col int, v bool) error {
	if v {
		return b.Set(row, col)
	}
	return b.Clear(row, col)
}

// Test reports whether the bit at pos is set.
func (b Fixed[W]) Test(pos int) (bool, error) {
	if err := checkPos(pos, b.Capacity()); err != nil {
		return false, err
	}
	return b.word.Bit(pos), nil
}

// SetBit sets the bit at pos.
func (b *Fixed[W]) SetBit(pos int) error {
	if err := checkPos(pos, b.Capacity()); err != nil {
		return err
	}
	b.word = b.word.WithBit(pos)
	return nil
}

// ClearBit clears the bit at pos.
func (b *Fixed[W]) ClearBit(pos int) error {
	if err := checkPos(pos, b.Capacity()); err != nil {
		return err
	}
	b.word = b.word.WithoutBit(pos)
	return nil
}

// Fill sets every cell to v. Bits past the capacity stay clear.
func (b *Fixed[W]) Fill(v bool) {
	if v {
		b.word = b.mask()
		return
	}
	var zero W
	b.word = zero
}

// CountSet returns the number of set cells.
func (b Fixed[W]) CountSet() int {
	return b.word.OnesCount()
}

// IsEmpty reports whether no cell is set.
func (b Fixed[W]) IsEmpty() bool {
	return b.word.IsZero()
}

// SetBits returns the positions of the set cells in ascending order.
// The sequence works on a snapshot of the board taken when it is called.
func (b Fixed[W]) SetBits() iter.Seq[int] {
	word := b.word
	return func(yield func(int) bool) {
		for w := word; !w.IsZero(); w = w.ClearLowest() {
			if !yield(w.TrailingZeros()) {
				return
			}
		}
	}
}

// Equal reports whether both boards have the same shape and cells.
func (b Fixed[W]) Equal(other Fixed[W]) bool {
	return b == other
}

// Union returns a board with the cells set in either board.
func (b Fixed[W]) Union(other Fixed[W]) (Fixed[W], error) {
	if err := sameShape(b.rows, b.cols, other.rows, other.cols); err != nil {
		return Fixed[W]{}, err
	}
	b.word = b.word.Or(other.word)
	return b, nil
}

// Intersection returns a board with the cells set in both boards.
func (b Fixed[W]) Intersection(other Fixed[W]) (Fixed[W], error) {
	if err := sameShape(b.rows, b.cols, other.rows, other.cols); err != nil {
		return Fixed[W]{}, err
	}
	b.word = b.word.And(other.word)
	return b, nil
}

// Difference returns a board with the cells set in b but not in other.
func (b Fixed[W]) Difference(other Fixed[W]) (Fixed[W], error) {
	if err := sameShape(b.rows, b.cols, other.rows, other.cols); err != nil {
		return Fixed[W]{}, err
	}
	b.word = b.word.AndNot(other.word)
	return b, nil
}

// Xor returns a board with the cells set in exactly one of the boards.
func (b Fixed[W]) Xor(other Fixed[W]) (Fixed[W], error) {
	if err := sameShape(b.rows, b.cols, other.rows, other.cols); err != nil {
		return Fixed[W]{}, err
	}
	b.word = b.word.Xor(other.word)
	return b, nil
}

// Complement returns a board with every cell flipped.
func (b Fixed[W]) Complement() Fixed[W] {
	b.word = b.word.Not().And(b.mask())
	return b
}
