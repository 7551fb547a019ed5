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

// Package render draws boards as text.
//
// The layout puts column indices (mod 10) on a header line and one line per
// row, with the row index right-aligned to two characters:
//
//	   0123
//	 0 X...
//	 1 .X..
//
// Text produces plain output; Color wraps cells in ANSI colour codes via
// github.com/mitchellh/colorstring, for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/ajroetker/go-bitboard/board"
)

const (
	setCell   = "X"
	clearCell = "."
)

// Text renders g with 'X' for set cells and '.' for clear ones.
func Text(g board.Grid) string {
	return draw(g, setCell, clearCell)
}

// Color renders g like Text, wrapping set cells in the colorstring colour
// on and clear cells in off, e.g. Color(g, "green", "dark_gray").
// An empty colour leaves those cells uncoloured.
func Color(g board.Grid, on, off string) string {
	return colorstring.Color(draw(g, wrap(on, setCell), wrap(off, clearCell)))
}

func wrap(color, cell string) string {
	if color == "" {
		return cell
	}
	return "[" + color + "]" + cell + "[reset]"
}

func draw(g board.Grid, on, off string) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < g.Cols(); col++ {
		fmt.Fprintf(&sb, "%d", col%10)
	}
	sb.WriteByte('\n')

	for row := 0; row < g.Rows(); row++ {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < g.Cols(); col++ {
			if v, _ := g.Get(row, col); v {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
