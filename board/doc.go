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

// Package board provides bit-packed rectangular boards for game engines.
//
// Each cell of a rows x cols board is one bit, stored in row-major order:
// the cell at (row, col) lives at bit position row*cols + col.
//
// Two representations share one capability contract:
//
//   - Fixed[W] keeps the whole board in a single word W (W8, W16, W32, W64
//     or W128). The word width is part of the type, so combining boards of
//     different widths does not compile, and every operation is a handful of
//     native bitwise instructions.
//   - Dynamic keeps the board in a []uint64 sized at construction time, for
//     boards whose size is only known at run time or exceeds 128 cells.
//
// Both implement Grid (cell access, counting, iteration and index
// conversion) and Board[B] (Grid plus the bitwise combinators).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-bitboard/board"
//
//	// A chess board fits exactly in 64 bits.
//	b, err := board.NewFixed[board.W64](8, 8)
//	if err != nil {
//		return err
//	}
//	_ = b.Set(1, 4)
//	for pos := range b.SetBits() {
//		row, col, _ := b.ReverseIndex(pos)
//		fmt.Println(row, col)
//	}
//
// When the size is only known at run time, New picks the smallest fixed
// representation that fits and falls back to Dynamic:
//
//	g, err := board.New(19, 19) // Go board: 361 cells, Dynamic
//
// # Errors
//
// Invalid caller input is reported as an error wrapping one of
// ErrOutOfBounds, ErrCapacityExceeded, ErrDimensionMismatch or
// ErrInvalidDimensions. Checks happen before any bit is touched, so a
// failed call never leaves a board partially modified. Dynamic boards are
// limited to MaxDynamicCells cells; larger shapes fail with
// ErrInvalidDimensions instead of attempting the allocation.
//
// # Population count
//
// CurrentPopCount reports the level detected at init. The portable and
// hardware levels share the math/bits code path and differ only in what the
// CPU advertises; the software level uses a SWAR routine.
//
// # Concurrency
//
// Boards carry no locks. A board may be read from several goroutines, but
// callers must synchronize writes themselves.
package board
