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

package did

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	u, err := ParseURL("did:example:123#key-1")
	require.NoError(t, err)

	assert.Equal(t, "did:example:123", u.DID)
	assert.Equal(t, "example", u.Method)
	assert.Equal(t, "key-1", u.Fragment)
	assert.True(t, u.HasFragment())
	assert.Equal(t, "did:example:123#key-1", u.String())
	assert.Equal(t, "did:example:123#key-1", u.KeyID())
}

func TestParseURL_WithoutFragment(t *testing.T) {
	u, err := ParseURL("did:example:123")
	require.NoError(t, err)

	assert.Equal(t, "did:example:123", u.DID)
	assert.False(t, u.HasFragment())
	assert.Equal(t, "did:example:123", u.KeyID())
}

func TestParseURL_Invalid(t *testing.T) {
	tests := []string{
		"",
		"example:123#key-1",
		"did:example",
		"not a did",
		"#key-1",
		"/path#key-1",
		"?x=1#key-1",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			u, err := ParseURL(input)
			assert.Error(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestParseURL_RelativeRejected(t *testing.T) {
	for _, input := range []string{"", "#key-1", "/path#key-1", "?x=1#key-1"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseURL(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRelativeURL)
		})
	}
}
