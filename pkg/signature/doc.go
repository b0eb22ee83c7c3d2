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

// Package signature defines the signature envelope exchanged between signers
// and verifiers, together with the coded error taxonomy shared by the rest of
// the module.
//
// # Envelope
//
// An Envelope is JSON compatible:
//
//	{
//	  "didUrl":    "did:example:123#key-1",
//	  "keyPath":   "m/0/1",
//	  "value":     "MEUCIQD...",
//	  "createdAt": 1700000000000
//	}
//
// value is the base64 encoded DER ECDSA signature over the SHA-256 digest of
// the canonically encoded data.
//
// # Errors
//
// All failures raised by the validator, signer and verifier are *Error values
// with one of the Code constants. Use errors.Is with the package sentinels to
// branch on the kind:
//
//	if errors.Is(err, signature.ErrInvalidDIDURL) {
//	    // ...
//	}
package signature
