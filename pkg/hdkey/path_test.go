// Copyright (C) 2025 SAGE-X Project
//
// This file is part of idm-signatures.
//
// idm-signatures is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// idm-signatures is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with idm-signatures.  If not, see <https://www.gnu.org/licenses/>.

package hdkey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path     string
		expected []uint32
	}{
		{"m", nil},
		{"M", nil},
		{"m'", nil},
		{"m/0", []uint32{0}},
		{"m/0/1", []uint32{0, 1}},
		{"M/2/3", []uint32{2, 3}},
		{"m/44'/0'/0'/0/5", []uint32{HardenedOffset + 44, HardenedOffset, HardenedOffset, 0, 5}},
		{"m/2147483647", []uint32{2147483647}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			indexes, err := ParsePath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, indexes)
		})
	}
}

func TestParsePath_Invalid(t *testing.T) {
	tests := []string{
		"",
		"0/1",
		"/0/1",
		"x/0",
		"m/",
		"m//1",
		"m/a",
		"m/-1",
		"m/+1",
		"m/1.5",
		"m/2147483648",
		"m/99999999999",
		"m/'",
		"m/1''",
		"m/0/1/",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := ParsePath(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPath))
			assert.True(t, errors.Is(err, ErrKeyDerivation))
		})
	}
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "m", FormatPath(nil))
	assert.Equal(t, "m/0/1", FormatPath([]uint32{0, 1}))
	assert.Equal(t, "m/44'/0", FormatPath([]uint32{HardenedOffset + 44, 0}))

	for _, path := range []string{"m/0/1", "m/44'/60'/0'/0/0"} {
		indexes, err := ParsePath(path)
		require.NoError(t, err)
		assert.Equal(t, path, FormatPath(indexes))
	}
}
