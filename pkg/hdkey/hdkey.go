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
	"bytes"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	sha256 "github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip32"
)

var (
	// ErrKeyDerivation is wrapped by every failure of this package.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidPath means the derivation path is malformed or out of range.
	ErrInvalidPath = fmt.Errorf("%w: invalid derivation path", ErrKeyDerivation)

	// ErrInvalidExtendedKey means the base58 extended key cannot be decoded.
	ErrInvalidExtendedKey = fmt.Errorf("%w: invalid extended key", ErrKeyDerivation)

	// ErrPublicKeyOnly is returned when private material is requested from a public key.
	ErrPublicKeyOnly = fmt.Errorf("%w: extended key is public", ErrKeyDerivation)
)

// serializedKeyLen is version(4) depth(1) fingerprint(4) child(4) chain(32) key(33) checksum(4).
const serializedKeyLen = 82

// Version prefixes of serialized extended keys.
var (
	xpubVersion = []byte{0x04, 0x88, 0xb2, 0x1e}
	xprvVersion = []byte{0x04, 0x88, 0xad, 0xe4}
	tpubVersion = []byte{0x04, 0x35, 0x87, 0xcf}
	tprvVersion = []byte{0x04, 0x35, 0x83, 0x94}
)

// ExtendedKey is a BIP32 extended key, public or private. Keys parsed from
// tpub/tprv serializations keep the testnet prefixes through Derive and Neuter.
type ExtendedKey struct {
	key     *bip32.Key
	testnet bool
}

// Parse decodes a base58check serialized extended key.
func Parse(extended string) (*ExtendedKey, error) {
	raw, err := base58.Decode(extended)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtendedKey, err)
	}
	if len(raw) != serializedKeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidExtendedKey, serializedKeyLen, len(raw))
	}

	var private, testnet bool
	switch version := raw[:4]; {
	case bytes.Equal(version, xpubVersion):
	case bytes.Equal(version, xprvVersion):
		private = true
	case bytes.Equal(version, tpubVersion):
		testnet = true
	case bytes.Equal(version, tprvVersion):
		private, testnet = true, true
	default:
		return nil, fmt.Errorf("%w: unknown version %x", ErrInvalidExtendedKey, version)
	}

	key, err := bip32.Deserialize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtendedKey, err)
	}
	if key.IsPrivate != private {
		return nil, fmt.Errorf("%w: version %x does not match key data", ErrInvalidExtendedKey, raw[:4])
	}

	return &ExtendedKey{key: key, testnet: testnet}, nil
}

// NewMaster derives the master extended private key from a BIP32 seed.
func NewMaster(seed []byte) (*ExtendedKey, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}
	return &ExtendedKey{key: key}, nil
}

// Derive parses extended and derives the child at path.
func Derive(extended, path string) (*ExtendedKey, error) {
	key, err := Parse(extended)
	if err != nil {
		return nil, err
	}
	return key.Derive(path)
}

// Derive returns the descendant of k at path. Hardened indexes require a
// private key.
func (k *ExtendedKey) Derive(path string) (*ExtendedKey, error) {
	indexes, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	current := k.key
	for _, index := range indexes {
		if index >= HardenedOffset && !current.IsPrivate {
			return nil, fmt.Errorf("%w: hardened index %s requires a private key", ErrKeyDerivation, FormatPath([]uint32{index}))
		}
		child, err := current.NewChildKey(index)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d: %v", ErrKeyDerivation, index, err)
		}
		current = child
	}
	return &ExtendedKey{key: current, testnet: k.testnet}, nil
}

// IsPrivate reports whether k holds private key material.
func (k *ExtendedKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the number of derivation steps from the master key.
func (k *ExtendedKey) Depth() int {
	return int(k.key.Depth)
}

// Neuter returns the public counterpart of k.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.key.IsPrivate {
		return k
	}
	return &ExtendedKey{key: k.key.PublicKey(), testnet: k.testnet}
}

// PublicKey returns the secp256k1 public key of k.
func (k *ExtendedKey) PublicKey() (*secp256k1.PublicKey, error) {
	compressed := k.Neuter().key.Key
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExtendedKey, err)
	}
	return pub, nil
}

// PrivateKey returns the secp256k1 private key of k.
func (k *ExtendedKey) PrivateKey() (*secp256k1.PrivateKey, error) {
	if !k.key.IsPrivate {
		return nil, ErrPublicKeyOnly
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(k.key.Key); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: private scalar out of range", ErrInvalidExtendedKey)
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

// IsTestnet reports whether k serializes with tpub/tprv prefixes.
func (k *ExtendedKey) IsTestnet() bool {
	return k.testnet
}

// String returns the base58check serialization of k.
func (k *ExtendedKey) String() string {
	if !k.testnet {
		return k.key.B58Serialize()
	}

	raw, err := k.key.Serialize()
	if err != nil {
		return ""
	}
	if k.key.IsPrivate {
		copy(raw[:4], tprvVersion)
	} else {
		copy(raw[:4], tpubVersion)
	}
	first := sha256.Sum256(raw[:serializedKeyLen-4])
	second := sha256.Sum256(first[:])
	copy(raw[serializedKeyLen-4:], second[:4])
	return base58.Encode(raw)
}
