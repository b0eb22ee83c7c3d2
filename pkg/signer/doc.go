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

// Package signer produces DID-bound secp256k1 signature envelopes.
//
// # Overview
//
// A signer is bound to a DID URL whose fragment names the public key in the
// signer's DID Document. Signing encodes the data canonically, hashes the
// bytes with SHA-256 and signs the digest with deterministic ECDSA:
//
//	s, err := signer.NewSigner("did:example:123#key-1", pemBytes)
//	if err != nil {
//	    return err
//	}
//	env, err := s.Sign(ctx, encoder.Value("hello"))
//
// The resulting envelope carries the DID URL, the key path, the DER
// signature in standard base64 and the creation time in milliseconds.
//
// # Key Paths
//
// NewSigner records the key path passed with WithKeyPath but signs with the
// key it was given. Callers that hold the extended private key should use
// NewHDSigner, which derives the signing key at the path it records:
//
//	s, err := signer.NewHDSigner("did:example:123#key-1", xprv, "m/0/1")
//
// Verifiers derive public children only, so the path must not contain
// hardened indexes if the envelope is to verify.
//
// # Accepted Keys
//
// Private keys may be SEC1 ("EC PRIVATE KEY") or PKCS#8 ("PRIVATE KEY"),
// PEM or DER. Anything other than an EC secp256k1 key is rejected with
// signature.CodeInvalidPrivateKey before any signing happens.
package signer
