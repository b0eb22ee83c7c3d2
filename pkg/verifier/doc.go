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

// Package verifier checks DID-bound secp256k1 signature envelopes.
//
// # Verification
//
// A verifier is created from a DID resolver. Verification validates the
// envelope, resolves the signer's DID, locates the public key entry named
// by the DID URL, derives the child key at the envelope's key path,
// recomputes the SHA-256 digest of the canonically encoded data and checks
// the ECDSA signature:
//
//	v := verifier.NewVerifier(resolver)
//	result, err := v.Verify(ctx, encoder.Value("hello"), env)
//	if err != nil {
//	    // DID resolution failed or ctx is done
//	    return err
//	}
//	if !result.Valid {
//	    log.Println("rejected:", result.Err)
//	}
//
// # Verdicts and Errors
//
// A signature that is malformed, unknown to the DID Document or simply
// wrong never produces an error; it produces a Result with Valid set to
// false and Err carrying signature.CodeInvalidSignature. Shape and DID URL
// problems keep their original error as the cause, so
// errors.Is(result.Err, signature.ErrInvalidSignatureShape) works.
//
// Only failures of the resolver itself, and cancellation of ctx, are
// returned as errors.
//
// # Key Selection
//
// The DefaultKeySelector matches the DID URL against the id of each public
// key entry and derives from publicExtendedKeyBase58 using public
// derivation. Hardened path components therefore always fail. Supply a
// custom KeySelector with WithKeySelector to change this.
package verifier
