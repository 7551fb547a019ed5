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

// Command bbview builds a board from flags and prints it.
//
// Usage:
//
//	bbview --rows 4 --cols 13 --set 0,0 --col 4
//	bbview --rows 19 --cols 19 --neighbors 9,9 --color
//
// The board uses the smallest fixed representation that fits unless
// --dynamic is given. Board statistics are logged to stderr in logfmt.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
