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

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate or bit position falls
	// outside the board, or when raw storage has bits set past the board's
	// capacity.
	ErrOutOfBounds = errors.New("board: out of bounds")

	// ErrCapacityExceeded is returned when a fixed board is asked to hold
	// more cells than its word has bits.
	ErrCapacityExceeded = errors.New("board: capacity exceeded")

	// ErrDimensionMismatch is returned when two boards of different shapes
	// are combined.
	ErrDimensionMismatch = errors.New("board: dimension mismatch")

	// ErrInvalidDimensions is returned for non-positive dimensions or a cell
	// count that overflows int.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")
)
