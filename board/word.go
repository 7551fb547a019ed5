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

import "math/bits"

// Word is the storage constraint for Fixed boards: a single unsigned word
// of Width() bits. The methods are value-to-value so boards never share
// storage.
//
// Callers pass bit indices in [0, Width()); Word methods do not check them.
type Word[W any] interface {
	comparable

	// Width returns the number of bits in the word.
	Width() int

	// Bit reports whether bit i is set.
	Bit(i int) bool

	// WithBit returns the word with bit i set.
	WithBit(i int) W

	// WithoutBit returns the word with bit i cleared.
	WithoutBit(i int) W

	// ClearLowest returns the word with its lowest set bit cleared.
	ClearLowest() W

	Or(W) W
	And(W) W
	AndNot(W) W
	Xor(W) W
	Not() W

	// Low returns a word with the n lowest bits set. n >= Width() sets all
	// bits, n <= 0 sets none.
	Low(n int) W

	IsZero() bool

	// OnesCount returns the number of set bits.
	OnesCount() int

	// TrailingZeros returns the index of the lowest set bit, or Width() for
	// the zero word.
	TrailingZeros() int
}

// W8 is an 8-bit board word (up to 8 cells).
type W8 uint8

// W16 is a 16-bit board word (up to 16 cells).
type W16 uint16

// W32 is a 32-bit board word (up to 32 cells).
type W32 uint32

// W64 is a 64-bit board word (up to 64 cells, e.g. chess or checkers).
type W64 uint64

// W128 is a 128-bit board word (up to 128 cells, e.g. 11x11 boards).
// Bits 0-63 live in Lo and bits 64-127 in Hi.
type W128 struct {
	Lo, Hi uint64
}

// WidthFor returns the width of the smallest word that holds capacity
// cells: 8, 16, 32, 64 or 128. It returns 0 when capacity is not positive
// or exceeds 128, meaning only a Dynamic board can hold it.
func WidthFor(capacity int) int {
	switch {
	case capacity <= 0:
		return 0
	case capacity <= 8:
		return 8
	case capacity <= 16:
		return 16
	case capacity <= 32:
		return 32
	case capacity <= 64:
		return 64
	case capacity <= 128:
		return 128
	default:
		return 0
	}
}

func (W8) Width() int { return 8 }
func (w W8) Bit(i int) bool { return w>>uint(i)&1 != 0 }
func (w W8) WithBit(i int) W8 { return w | 1<<uint(i) }
func (w W8) WithoutBit(i int) W8 { return w &^ (1 << uint(i)) }
func (w W8) ClearLowest() W8 { return w & (w - 1) }
func (w W8) Or(o W8) W8 { return w | o }
func (w W8) And(o W8) W8 { return w & o }
func (w W8) AndNot(o W8) W8 { return w &^ o }
func (w W8) Xor(o W8) W8 { return w ^ o }
func (w W8) Not() W8 { return ^w }
func (w W8) IsZero() bool { return w == 0 }
func (w W8) OnesCount() int { return onesCount8(uint8(w)) }
func (w W8) TrailingZeros() int { return bits.TrailingZeros8(uint8(w)) }
func (W8) Low(n int) W8 { return W8(lowMask64(n, 8)) }

func (W16) Width() int { return 16 }
func (w W16) Bit(i int) bool { return w>>uint(i)&1 != 0 }
func (w W16) WithBit(i int) W16 { return w | 1<<uint(i) }
func (w W16) WithoutBit(i int) W16 { return w &^ (1 << uint(i)) }
func (w W16) ClearLowest() W16 { return w & (w - 1) }
func (w W16) Or(o W16) W16 { return w | o }
func (w W16) And(o W16) W16 { return w & o }
func (w W16) AndNot(o W16) W16 { return w &^ o }
func (w W16) Xor(o W16) W16 { return w ^ o }
func (w W16) Not() W16 { return ^w }
func (w W16) IsZero() bool { return w == 0 }
func (w W16) OnesCount() int { return onesCount16(uint16(w)) }
func (w W16) TrailingZeros() int { return bits.TrailingZeros16(uint16(w)) }
func (W16) Low(n int) W16 { return W16(lowMask64(n, 16)) }

func (W32) Width() int { return 32 }
func (w W32) Bit(i int) bool { return w>>uint(i)&1 != 0 }
func (w W32) WithBit(i int) W32 { return w | 1<<uint(i) }
func (w W32) WithoutBit(i int) W32 { return w &^ (1 << uint(i)) }
func (w W32) ClearLowest() W32 { return w & (w - 1) }
func (w W32) Or(o W32) W32 { return w | o }
func (w W32) And(o W32) W32 { return w & o }
func (w W32) AndNot(o W32) W32 { return w &^ o }
func (w W32) Xor(o W32) W32 { return w ^ o }
func (w W32) Not() W32 { return ^w }
func (w W32) IsZero() bool { return w == 0 }
func (w W32) OnesCount() int { return onesCount32(uint32(w)) }
func (w W32) TrailingZeros() int { return bits.TrailingZeros32(uint32(w)) }
func (W32) Low(n int) W32 { return W32(lowMask64(n, 32)) }

func (W64) Width() int { return 64 }
func (w W64) Bit(i int) bool { return w>>uint(i)&1 != 0 }
func (w W64) WithBit(i int) W64 { return w | 1<<uint(i) }
func (w W64) WithoutBit(i int) W64 { return w &^ (1 << uint(i)) }
func (w W64) ClearLowest() W64 { return w & (w - 1) }
func (w W64) Or(o W64) W64 { return w | o }
func (w W64) And(o W64) W64 { return w & o }
func (w W64) AndNot(o W64) W64 { return w &^ o }
func (w W64) Xor(o W64) W64 { return w ^ o }
func (w W64) Not() W64 { return ^w }
func (w W64) IsZero() bool { return w == 0 }
func (w W64) OnesCount() int { return onesCount64(uint64(w)) }
func (w W64) TrailingZeros() int { return bits.TrailingZeros64(uint64(w)) }
func (W64) Low(n int) W64 { return W64(lowMask64(n, 64)) }

func (W128) Width() int { return 128 }
func (w W128) IsZero() bool { return w.Lo == 0 && w.Hi == 0 }
func (w W128) Or(o W128) W128 { return W128{w.Lo | o.Lo, w.Hi | o.Hi} }
func (w W128) And(o W128) W128 { return W128{w.Lo & o.Lo, w.Hi & o.Hi} }
func (w W128) AndNot(o W128) W128 { return W128{w.Lo &^ o.Lo, w.Hi &^ o.Hi} }
func (w W128) Xor(o W128) W128 { return W128{w.Lo ^ o.Lo, w.Hi ^ o.Hi} }
func (w W128) Not() W128 { return W128{^w.Lo, ^w.Hi} }
func (w W128) OnesCount() int { return onesCount64(w.Lo) + onesCount64(w.Hi) }

func (w W128) Bit(i int) bool {
	if i < 64 {
		return w.Lo>>uint(i)&1 != 0
	}
	return w.Hi>>uint(i-64)&1 != 0
}

func (w W128) WithBit(i int) W128 {
	if i < 64 {
		w.Lo |= 1 << uint(i)
	} else {
		w.Hi |= 1 << uint(i-64)
	}
	return w
}

func (w W128) WithoutBit(i int) W128 {
	if i < 64 {
		w.Lo &^= 1 << uint(i)
	} else {
		w.Hi &^= 1 << uint(i-64)
	}
	return w
}

func (w W128) ClearLowest() W128 {
	if w.Lo != 0 {
		w.Lo &= w.Lo - 1
	} else {
		w.Hi &= w.Hi - 1
	}
	return w
}

func (W128) Low(n int) W128 {
	if n <= 64 {
		return W128{Lo: lowMask64(n, 64)}
	}
	return W128{Lo: ^uint64(0), Hi: lowMask64(n-64, 64)}
}

func (w W128) TrailingZeros() int {
	if w.Lo != 0 {
		return bits.TrailingZeros64(w.Lo)
	}
	return 64 + bits.TrailingZeros64(w.Hi)
}

// lowMask64 returns the n lowest bits set, clamped to [0, width].
func lowMask64(n, width int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= width {
		n = width
	}
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}
