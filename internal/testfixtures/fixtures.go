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

// Package testfixtures builds deterministic keys and DID Documents for tests.
package testfixtures

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"

	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/hdkey"
	"github.com/sage-x-project/idm-signatures/pkg/keys"
)

const (
	// Mnemonic is the BIP39 phrase every fixture key descends from.
	Mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	// DID is the subject of the fixture document.
	DID = "did:example:123"

	// KeyID is the entry carrying the master extended public key.
	KeyID = DID + "#key-1"

	// PemOnlyKeyID is an entry with a PEM key and no extended key.
	PemOnlyKeyID = DID + "#key-pem"
)

// Master returns the master extended private key of Mnemonic.
func Master(tb testing.TB) *hdkey.ExtendedKey {
	tb.Helper()

	seed, err := bip39.NewSeedWithErrorChecking(Mnemonic, "")
	require.NoError(tb, err)

	master, err := hdkey.NewMaster(seed)
	require.NoError(tb, err)
	return master
}

// Xprv returns the serialized master extended private key.
func Xprv(tb testing.TB) string {
	tb.Helper()
	return Master(tb).String()
}

// Xpub returns the serialized master extended public key.
func Xpub(tb testing.TB) string {
	tb.Helper()
	return Master(tb).Neuter().String()
}

// PrivateKeyPEM returns the SEC1 PEM encoding of the child private key at path.
func PrivateKeyPEM(tb testing.TB, path string) []byte {
	tb.Helper()

	child, err := Master(tb).Derive(path)
	require.NoError(tb, err)
	priv, err := child.PrivateKey()
	require.NoError(tb, err)

	pemBytes, err := keys.MarshalSEC1PEM(priv)
	require.NoError(tb, err)
	return pemBytes
}

// Document returns a DID Document for DID with the master xpub under KeyID
// and a PEM-only entry under PemOnlyKeyID.
func Document(tb testing.TB) *did.Document {
	tb.Helper()

	return &did.Document{
		ID: DID,
		PublicKey: []did.PublicKey{
			{
				ID:                      KeyID,
				Type:                    "Secp256k1VerificationKey2018",
				Controller:              DID,
				PublicExtendedKeyBase58: Xpub(tb),
			},
			{
				ID:           PemOnlyKeyID,
				Type:         "Secp256k1VerificationKey2018",
				Controller:   DID,
				PublicKeyPem: "-----BEGIN PUBLIC KEY-----\n-----END PUBLIC KEY-----\n",
			},
		},
	}
}

// Resolver returns a static resolver serving Document.
func Resolver(tb testing.TB) *did.StaticResolver {
	tb.Helper()
	return did.NewStaticResolver(map[string]*did.Document{DID: Document(tb)})
}

// CountingResolver wraps a resolver and records how often it was called.
type CountingResolver struct {
	Next  did.Resolver
	Calls atomic.Int64
}

// Resolve implements did.Resolver.
func (r *CountingResolver) Resolve(ctx context.Context, subject string) (*did.Document, error) {
	r.Calls.Add(1)
	return r.Next.Resolve(ctx, subject)
}
