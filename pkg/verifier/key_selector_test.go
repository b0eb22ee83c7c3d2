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

package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/idm-signatures/internal/testfixtures"
	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
)

func TestDefaultKeySelector_SelectKey(t *testing.T) {
	// Setup
	selector := NewDefaultKeySelector()
	doc := testfixtures.Document(t)

	child, err := testfixtures.Master(t).Derive("m/3/4")
	require.NoError(t, err)
	expected, err := child.PublicKey()
	require.NoError(t, err)

	// Execute
	pub, err := selector.SelectKey(doc, testfixtures.KeyID, "m/3/4")

	// Assert
	require.NoError(t, err)
	assert.True(t, expected.IsEqual(pub))
}

func TestDefaultKeySelector_ExtendedPrivateKeyEntry(t *testing.T) {
	selector := NewDefaultKeySelector()
	doc := &did.Document{PublicKey: []did.PublicKey{
		{ID: testfixtures.KeyID, PublicExtendedKeyBase58: testfixtures.Xprv(t)},
	}}

	pub, err := selector.SelectKey(doc, testfixtures.KeyID, "m")

	require.NoError(t, err)
	priv, err := testfixtures.Master(t).PrivateKey()
	require.NoError(t, err)
	assert.True(t, priv.PubKey().IsEqual(pub))
}

func TestDefaultKeySelector_Errors(t *testing.T) {
	doc := testfixtures.Document(t)

	tests := []struct {
		name    string
		doc     *did.Document
		didURL  string
		keyPath string
		message string
	}{
		{
			name:    "Unknown entry",
			doc:     doc,
			didURL:  "did:example:123#missing",
			keyPath: "m",
			message: `The publicKey "did:example:123#missing" was not found within the DID Document`,
		},
		{
			name:    "Entry id must match exactly",
			doc:     doc,
			didURL:  "did:example:123#KEY-1",
			keyPath: "m",
			message: `The publicKey "did:example:123#KEY-1" was not found within the DID Document`,
		},
		{
			name:    "Nil document",
			doc:     nil,
			didURL:  testfixtures.KeyID,
			keyPath: "m",
			message: `The publicKey "did:example:123#key-1" was not found within the DID Document`,
		},
		{
			name:    "PEM only",
			doc:     doc,
			didURL:  testfixtures.PemOnlyKeyID,
			keyPath: "m",
			message: `The publicKey "did:example:123#key-pem" was found in the DID Document but is missing publicKeyPem or publicExtendedKeyBase58 properties`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, err := NewDefaultKeySelector().SelectKey(tt.doc, tt.didURL, tt.keyPath)

			assert.Nil(t, pub)
			var sigErr *signature.Error
			require.ErrorAs(t, err, &sigErr)
			assert.Equal(t, signature.CodeInvalidSignature, sigErr.Code)
			assert.Equal(t, tt.message, sigErr.Message)
		})
	}
}

func TestDefaultKeySelector_DerivationErrors(t *testing.T) {
	for _, path := range []string{"m/0'", "m/1/2h", "", "m//1", "m/2147483648"} {
		t.Run(path, func(t *testing.T) {
			pub, err := NewDefaultKeySelector().SelectKey(testfixtures.Document(t), testfixtures.KeyID, path)

			assert.Nil(t, pub)
			var sigErr *signature.Error
			require.ErrorAs(t, err, &sigErr)
			assert.Equal(t, signature.CodeInvalidSignature, sigErr.Code)
			assert.NotEmpty(t, sigErr.Message)
		})
	}
}

func TestDefaultKeySelector_CorruptExtendedKey(t *testing.T) {
	doc := &did.Document{PublicKey: []did.PublicKey{
		{ID: testfixtures.KeyID, PublicExtendedKeyBase58: "xpubnotreallyakey"},
	}}

	pub, err := NewDefaultKeySelector().SelectKey(doc, testfixtures.KeyID, "m")

	assert.Nil(t, pub)
	assert.Error(t, err)
}
