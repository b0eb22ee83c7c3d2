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
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/sage-x-project/idm-signatures/pkg/did"
)

// KeySelector locates the public key entry for a DID URL in a resolved
// document and returns the key to verify with.
type KeySelector interface {
	// SelectKey returns the public key at keyPath under the entry whose id
	// equals didURL. Failures are *signature.Error values.
	SelectKey(doc *did.Document, didURL, keyPath string) (*secp256k1.PublicKey, error)
}
