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

package hasher

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_KnownDigests(t *testing.T) {
	ctx := context.Background()
	input := []byte("abc")

	tests := []struct {
		alg      Algorithm
		expected string
	}{
		{SHA1, "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA384, "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{SHA512, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			digest, err := Hash(ctx, input, tt.alg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hex.EncodeToString(digest))

			size, err := Size(tt.alg)
			require.NoError(t, err)
			assert.Len(t, digest, size)
			assert.True(t, tt.alg.Supported())
		})
	}
}

func TestHash_Deterministic(t *testing.T) {
	ctx := context.Background()

	a, err := Hash(ctx, []byte("hello"), SHA256)
	require.NoError(t, err)
	b, err := Hash(ctx, []byte("hello"), SHA256)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHash_EmptyInput(t *testing.T) {
	digest, err := Hash(context.Background(), nil, SHA256)
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(digest))
}

func TestHash_UnsupportedAlgorithm(t *testing.T) {
	digest, err := Hash(context.Background(), []byte("abc"), Algorithm("MD5"))
	require.Error(t, err)
	assert.Nil(t, digest)
	assert.True(t, errors.Is(err, ErrHash))
	assert.False(t, Algorithm("MD5").Supported())

	_, err = Size(Algorithm("MD5"))
	assert.Error(t, err)
}

func TestHash_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Hash(ctx, []byte("abc"), SHA256)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHash)
	assert.ErrorIs(t, err, context.Canceled)
}
