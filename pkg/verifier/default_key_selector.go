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
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/hdkey"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
)

// DefaultKeySelector looks the entry up by exact id and derives the child
// public key from its publicExtendedKeyBase58.
type DefaultKeySelector struct{}

// NewDefaultKeySelector creates a new DefaultKeySelector
func NewDefaultKeySelector() *DefaultKeySelector {
	return &DefaultKeySelector{}
}

// SelectKey implements KeySelector.
func (s *DefaultKeySelector) SelectKey(doc *did.Document, didURL, keyPath string) (*secp256k1.PublicKey, error) {
	entry, ok := doc.FindPublicKey(didURL)
	if !ok {
		return nil, signature.NewError(signature.CodeInvalidSignature,
			fmt.Sprintf("The publicKey %q was not found within the DID Document", didURL),
			map[string]any{"did": subjectOf(didURL, doc), "didDocument": doc})
	}

	// PEM entries are recognised but cannot be derived from.
	if !entry.HasExtendedKey() {
		return nil, signature.NewError(signature.CodeInvalidSignature,
			fmt.Sprintf("The publicKey %q was found in the DID Document but is missing publicKeyPem or publicExtendedKeyBase58 properties", didURL),
			map[string]any{"didPublicKey": entry})
	}

	child, err := hdkey.Derive(entry.PublicExtendedKeyBase58, keyPath)
	if err != nil {
		return nil, signature.Wrap(signature.CodeInvalidSignature, err.Error(), err,
			map[string]any{"keyPath": keyPath})
	}

	pub, err := child.PublicKey()
	if err != nil {
		return nil, signature.Wrap(signature.CodeInvalidSignature, err.Error(), err,
			map[string]any{"keyPath": keyPath})
	}
	return pub, nil
}

func subjectOf(didURL string, doc *did.Document) string {
	if parsed, err := did.ParseURL(didURL); err == nil {
		return parsed.DID
	}
	if doc != nil {
		return doc.ID
	}
	return ""
}
