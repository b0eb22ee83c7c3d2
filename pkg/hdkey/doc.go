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

// Package hdkey derives child keys from BIP32 extended keys.
//
// A verifier holding an extended public key (xpub) from a DID Document
// derives the public key that signed an envelope from the envelope's key
// path:
//
//	child, err := hdkey.Derive(xpub, "m/0/1")
//	pub, err := child.PublicKey()
//
// Only non-hardened indexes can be derived from public keys.
package hdkey
