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

// This file provides the population count routines behind Word.OnesCount.
// math/bits is used unless the software level is selected; the SWAR
// routine exists so both can be checked against each other.

func onesCount8(x uint8) int {
	if currentPopCount == PopCountSoftware {
		return swarOnesCount64(uint64(x))
	}
	return bits.OnesCount8(x)
}

func onesCount16(x uint16) int {
	if currentPopCount == PopCountSoftware {
		return swarOnesCount64(uint64(x))
	}
	return bits.OnesCount16(x)
}

func onesCount32(x uint32) int {
	if currentPopCount == PopCountSoftware {
		return swarOnesCount64(uint64(x))
	}
	return bits.OnesCount32(x)
}

func onesCount64(x uint64) int {
	if currentPopCount == PopCountSoftware {
		return swarOnesCount64(x)
	}
	return bits.OnesCount64(x)
}

// swarOnesCount64 counts set bits by summing adjacent bit fields in
// parallel: pairs, nibbles, then bytes via a multiply.
func swarOnesCount64(x uint64) int {
	const (
		m1  = 0x5555555555555555
		m2  = 0x3333333333333333
		m4  = 0x0f0f0f0f0f0f0f0f
		h01 = 0x0101010101010101
	)
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h01) >> 56)
}
