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

package signer

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/sage-x-project/idm-signatures/pkg/encoder"
	"github.com/sage-x-project/idm-signatures/pkg/hasher"
	"github.com/sage-x-project/idm-signatures/pkg/hdkey"
	"github.com/sage-x-project/idm-signatures/pkg/keys"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
	"github.com/sage-x-project/idm-signatures/pkg/validator"
)

// DefaultSigner signs with a single secp256k1 private key. It holds no
// mutable state and is safe for concurrent use.
type DefaultSigner struct {
	didURL  string
	keyPath string
	key     *secp256k1.PrivateKey
	opts    *options
}

// NewSigner creates a signer from a DID URL and an encoded private key
// (SEC1 or PKCS#8, PEM or DER). The key must be EC secp256k1.
func NewSigner(didURL string, privateKey []byte, opts ...Option) (*DefaultSigner, error) {
	if _, err := validator.ValidateDIDURL(didURL); err != nil {
		return nil, err
	}

	decomposed, err := keys.Decompose(privateKey)
	if err != nil {
		return nil, signature.Wrap(signature.CodeInvalidPrivateKey,
			"Unable to decompose private key", err, nil)
	}
	if err := validator.ValidateKeyAlgorithm(decomposed.Algorithm); err != nil {
		return nil, err
	}

	key, err := decomposed.Secp256k1()
	if err != nil {
		return nil, signature.Wrap(signature.CodeInvalidPrivateKey, err.Error(), err,
			map[string]any{"keyAlgorithm": decomposed.Algorithm})
	}

	return newDefaultSigner(didURL, key, newOptions(opts)), nil
}

// NewHDSigner creates a signer whose key is derived from an extended private
// key at keyPath, so the recorded path always matches the signing key.
// WithKeyPath is ignored.
func NewHDSigner(didURL, extendedPrivateKey, keyPath string, opts ...Option) (*DefaultSigner, error) {
	if _, err := validator.ValidateDIDURL(didURL); err != nil {
		return nil, err
	}

	child, err := hdkey.Derive(extendedPrivateKey, keyPath)
	if err != nil {
		return nil, signature.Wrap(signature.CodeInvalidPrivateKey, err.Error(), err,
			map[string]any{"keyPath": keyPath})
	}
	key, err := child.PrivateKey()
	if err != nil {
		return nil, signature.Wrap(signature.CodeInvalidPrivateKey, err.Error(), err,
			map[string]any{"keyPath": keyPath})
	}

	o := newOptions(opts)
	o.keyPath = keyPath
	return newDefaultSigner(didURL, key, o), nil
}

func newDefaultSigner(didURL string, key *secp256k1.PrivateKey, o *options) *DefaultSigner {
	return &DefaultSigner{
		didURL:  didURL,
		keyPath: o.keyPath,
		key:     key,
		opts:    o,
	}
}

// Sign implements Signer.
func (s *DefaultSigner) Sign(ctx context.Context, data encoder.Data) (*signature.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	encoded, err := encoder.Encode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode data: %w", err)
	}

	digest, err := hasher.Hash(ctx, encoded, hasher.SHA256)
	if err != nil {
		return nil, fmt.Errorf("failed to hash data: %w", err)
	}

	sig := ecdsa.Sign(s.key, digest)

	return &signature.Envelope{
		DIDURL:    s.didURL,
		KeyPath:   s.keyPath,
		Value:     base64.StdEncoding.EncodeToString(sig.Serialize()),
		CreatedAt: s.opts.now().UnixMilli(),
	}, nil
}

// DIDURL implements Signer.
func (s *DefaultSigner) DIDURL() string {
	return s.didURL
}

// KeyPath implements Signer.
func (s *DefaultSigner) KeyPath() string {
	return s.keyPath
}

// PublicKey returns the public half of the signing key.
func (s *DefaultSigner) PublicKey() *secp256k1.PublicKey {
	return s.key.PubKey()
}
