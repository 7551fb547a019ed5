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
	"math/bits"
)

const (
	// wordBits is the width of one Dynamic storage word.
	wordBits = 64

	// log2WordBits is lg2(wordBits).
	log2WordBits = 6

	// MaxDynamicCells is the largest capacity NewDynamic accepts: 2^32 cells,
	// backed by 512 MiB of words.
	MaxDynamicCells = 1 << 32
)

// Dynamic is a board whose size is chosen at run time. Cells are stored in
// ceil(rows*cols/64) words, bit i of the board being bit i%64 of word i/64.
//
// Copying a Dynamic value shares its storage; use Clone for an independent
// board. The zero value is a 0x0 board on which every cell access fails.
type Dynamic struct {
	words []uint64
	rows  int
	cols  int
}

// wordsFor returns the number of words needed for capacity bits.
func wordsFor(capacity int) int {
	return (capacity + wordBits - 1) >> log2WordBits
}

// NewDynamic returns an empty rows x cols board. Capacities above
// MaxDynamicCells fail with ErrInvalidDimensions.
func NewDynamic(rows, cols int) (Dynamic, error) {
	capacity, err := checkDims(rows, cols)
	if err != nil {
		return Dynamic{}, err
	}
	if uint64(capacity) > MaxDynamicCells {
		return Dynamic{}, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, rows, cols, uint64(MaxDynamicCells))
	}
	return Dynamic{
		words: make([]uint64, wordsFor(capacity)),
		rows:  rows,
		cols:  cols,
	}, nil
}

// DynamicFromWords returns a rows x cols board initialized from a copy of
// words. It needs exactly ceil(rows*cols/64) words, and bits past rows*cols
// in the last word must be clear.
func DynamicFromWords(rows, cols int, words []uint64) (Dynamic, error) {
	b, err := NewDynamic(rows, cols)
	if err != nil {
		return Dynamic{}, err
	}
	if len(words) != len(b.words) {
		return Dynamic{}, fmt.Errorf("%w: %dx%d needs %d words, got %d",
			ErrDimensionMismatch, rows, cols, len(b.words), len(words))
	}
	last := len(words) - 1
	if words[last]&^b.lastMask() != 0 {
		return Dynamic{}, fmt.Errorf("%w: words have bits set past capacity %d", ErrOutOfBounds, b.Capacity())
	}
	copy(b.words, words)
	return b, nil
}

// lastMask returns the in-board bits of the last storage word.
func (b Dynamic) lastMask() uint64 {
	if rem := b.Capacity() % wordBits; rem != 0 {
		return 1<<uint(rem) - 1
	}
	return ^uint64(0)
}

// Rows returns the number of rows.
func (b Dynamic) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Dynamic) Cols() int { return b.cols }

// Capacity returns the number of cells, rows*cols.
func (b Dynamic) Capacity() int { return b.rows * b.cols }

// Words returns a copy of the storage words.
func (b Dynamic) Words() []uint64 {
	out := make([]uint64, len(b.words))
	copy(out, b.words)
	return out
}

// Clone returns an independent copy of the board.
func (b Dynamic) Clone() Dynamic {
	b.words = b.Words()
	return b
}

// Index returns the bit position of (row, col).
func (b Dynamic) Index(row, col int) (int, error) {
	return Index(row, col, b.rows, b.cols)
}

// ReverseIndex returns the (row, col) of a bit position.
func (b Dynamic) ReverseIndex(pos int) (row, col int, err error) {
	return ReverseIndex(pos, b.rows, b.cols)
}

func (b Dynamic) test(pos int) bool {
	return b.words[pos>>log2WordBits]>>uint(pos&(wordBits-1))&1 != 0
}

func (b *Dynamic) set(pos int) {
	b.words[pos>>log2WordBits] |= 1 << uint(pos&(wordBits-1))
}

func (b *Dynamic) clear(pos int) {
	b.words[pos>>log2WordBits] &^= 1 << uint(pos&(wordBits-1))
}

// Get reports whether the cell at (row, col) is set.
func (b Dynamic) Get(row, col int) (bool, error) {
	pos, err := b.Index(row, col)
	if err != nil {
		return false, err
	}
	return b.test(pos), nil
}

// Set sets the cell at (row, col).
func (b *Dynamic) Set(row, col int) error {
	pos, err := b.Index(row, col)
	if err != nil {
		return err
	}
	b.set(pos)
	return nil
}

// Clear clears the cell at (row, col).
func (b *Dynamic) Clear(row, col int) error {
	pos, err := b.Index(row, col)
	if err != nil {
		return err
	}
	b.clear(pos)
	return nil
}

// Assign sets the cell at (row, col) to v.
func (b *Dynamic) Assign(row, col int, v bool) error {
	if v {
		return b.Set(row, col)
	}
	return b.Clear(row, col)
}

// Test reports whether the bit at pos is set.
func (b Dynamic) Test(pos int) (bool, error) {
	if err := checkPos(pos, b.Capacity()); err != nil {
		return false, err
	}
	return b.test(pos), nil
}

// SetBit sets the bit at pos.
func (b *Dynamic) SetBit(pos int) error {
	if err := checkPos(pos, b.Capacity()); err != nil {
		return err
	}
	b.set(pos)
	return nil
}

// ClearBit clears the bit at pos.
func (b *Dynamic) ClearBit(pos int) error {
	if err := checkPos(pos, b.Capacity()); err != nil {
		return err
	}
	b.clear(pos)
	return nil
}

// Fill sets every cell to v. Bits past the capacity stay clear.
func (b *Dynamic) Fill(v bool) {
	if len(b.words) == 0 {
		return
	}
	var w uint64
	if v {
		w = ^uint64(0)
	}
	for i := range b.words {
		b.words[i] = w
	}
	b.words[len(b.words)-1] &= b.lastMask()
}

// CountSet returns the number of set cells.
func (b Dynamic) CountSet() int {
	n := 0
	for _, w := range b.words {
		n += onesCount64(w)
	}
	return n
}

// IsEmpty reports whether no cell is set.
func (b Dynamic) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// SetBits returns the positions of the set cells in ascending order.
// Each word is read when the scan reaches it, so mutating the board while
// ranging over the sequence is not supported.
func (b Dynamic) SetBits() iter.Seq[int] {
	words := b.words
	return func(yield func(int) bool) {
		for i, w := range words {
			base := i << log2WordBits
			for ; w != 0; w &= w - 1 {
				if !yield(base + bits.TrailingZeros64(w)) {
					return
				}
			}
		}
	}
}

// Equal reports whether both boards have the same shape and cells.
func (b Dynamic) Equal(other Dynamic) bool {
	if b.rows != other.rows || b.cols != other.cols || len(b.words) != len(other.words) {
		return false
	}
	for i, w := range b.words {
		if other.words[i] != w {
			return false
		}
	}
	return true
}

// combine applies op word by word into a fresh board.
func (b Dynamic) combine(other Dynamic, op func(x, y uint64) uint64) (Dynamic, error) {
	if err := sameShape(b.rows, b.cols, other.rows, other.cols); err != nil {
		return Dynamic{}, err
	}
	out := Dynamic{words: make([]uint64, len(b.words)), rows: b.rows, cols: b.cols}
	for i, w := range b.words {
		out.words[i] = op(w, other.words[i])
	}
	return out, nil
}

// Union returns a board with the cells set in either board.
func (b Dynamic) Union(other Dynamic) (Dynamic, error) {
	return b.combine(other, func(x, y uint64) uint64 { return x | y })
}

// Intersection returns a board with the cells set in both boards.
func (b Dynamic) Intersection(other Dynamic) (Dynamic, error) {
	return b.combine(other, func(x, y uint64) uint64 { return x & y })
}

// Difference returns a board with the cells set in b but not in other.
func (b Dynamic) Difference(other Dynamic) (Dynamic, error) {
	return b.combine(other, func(x, y uint64) uint64 { return x &^ y })
}

// Xor returns a board with the cells set in exactly one of the boards.
func (b Dynamic) Xor(other Dynamic) (Dynamic, error) {
	return b.combine(other, func(x, y uint64) uint64 { return x ^ y })
}

// Complement returns a board with every cell flipped.
func (b Dynamic) Complement() Dynamic {
	out := Dynamic{words: make([]uint64, len(b.words)), rows: b.rows, cols: b.cols}
	if len(out.words) == 0 {
		return out
	}
	for i, w := range b.words {
		out.words[i] = ^w
	}
	out.words[len(out.words)-1] &= b.lastMask()
	return out
}
