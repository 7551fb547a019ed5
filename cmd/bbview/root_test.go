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

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bitboard/board"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	stdout, stderr, err := execute(t, "--rows", "4", "--cols", "13", "--set", "0,0", "--col", "4")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"   0123456789012",
		" 0 X...X........",
		" 1 ....X........",
		" 2 ....X........",
		" 3 ....X........",
		"",
	}, "\n"), stdout)
	assert.Contains(t, stderr, "level=info")
	assert.Contains(t, stderr, "set=5")
	assert.NotContains(t, stderr, "level=debug")
}

func TestRootCommandVerboseDynamic(t *testing.T) {
	stdout, stderr, err := execute(t, "--rows", "3", "--cols", "3", "--dynamic", "--neighbors", "1,1", "-v")
	require.NoError(t, err)
	assert.Equal(t, "   012\n 0 XXX\n 1 X.X\n 2 XXX\n", stdout)
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, "*board.Dynamic")
	assert.Contains(t, stderr, "set=8")
}

func TestRootCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"out_of_bounds_set", []string{"--rows", "2", "--cols", "2", "--set", "2,0"}, board.ErrOutOfBounds},
		{"out_of_bounds_row", []string{"--rows", "2", "--cols", "2", "--row", "5"}, board.ErrOutOfBounds},
		{"invalid_dims", []string{"--rows", "0"}, board.ErrInvalidDimensions},
		{"huge_dims", []string{"--rows", "1", "--cols", "9223372036854775807"}, board.ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "level=error")
		})
	}

	_, _, err := execute(t, "--set", "1;2")
	assert.ErrorContains(t, err, "want row,col")
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 3, 7")
	require.NoError(t, err)
	assert.Equal(t, board.Coord{Row: 3, Col: 7}, c)

	_, err = parseCoord("a,1")
	assert.Error(t, err)
	_, err = parseCoord("1,b")
	assert.Error(t, err)
}
