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

// PopCountLevel identifies which population count routine boards use.
//
// PopCountPortable and PopCountHardware run the same math/bits code; the
// distinction only reports whether the CPU advertises a native instruction.
// PopCountSoftware is the one level that selects a different routine.
type PopCountLevel int

const (
	// PopCountSoftware uses a portable branch-free SWAR routine.
	PopCountSoftware PopCountLevel = iota

	// PopCountPortable uses math/bits without a confirmed CPU instruction.
	// The compiler may still lower it to one.
	PopCountPortable

	// PopCountHardware uses math/bits on a CPU with a native popcount
	// instruction (x86 POPCNT, ARM NEON CNT).
	PopCountHardware
)

// String returns a human-readable name for the popcount level.
func (l PopCountLevel) String() string {
	switch l {
	case PopCountSoftware:
		return "software"
	case PopCountPortable:
		return "portable"
	case PopCountHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// currentPopCount is the detected popcount level for this runtime.
// Set by init() in dispatch_*.go files.
var currentPopCount PopCountLevel

// CurrentPopCount returns the popcount routine used by CountSet.
func CurrentPopCount() PopCountLevel {
	return currentPopCount
}
