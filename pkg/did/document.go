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

package did

// Document is the subset of a resolved DID Document read by verification.
type Document struct {
	// ID is the DID the document describes.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// PublicKey lists the public key entries of the subject.
	PublicKey []PublicKey `json:"publicKey" yaml:"publicKey"`
}

// PublicKey is a single public key entry of a DID Document.
type PublicKey struct {
	// ID is the full DID URL of the entry, e.g. did:example:123#key-1.
	ID string `json:"id" yaml:"id"`

	// Type is the verification method type, informational only.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Controller is the DID controlling this key.
	Controller string `json:"controller,omitempty" yaml:"controller,omitempty"`

	// PublicExtendedKeyBase58 is a BIP32 extended public key (xpub).
	PublicExtendedKeyBase58 string `json:"publicExtendedKeyBase58,omitempty" yaml:"publicExtendedKeyBase58,omitempty"`

	// PublicKeyPem is accepted for compatibility but never used to verify.
	PublicKeyPem string `json:"publicKeyPem,omitempty" yaml:"publicKeyPem,omitempty"`
}

// FindPublicKey returns the entry whose ID equals id exactly.
func (d *Document) FindPublicKey(id string) (*PublicKey, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.PublicKey {
		if d.PublicKey[i].ID == id {
			return &d.PublicKey[i], true
		}
	}
	return nil, false
}

// HasExtendedKey reports whether the entry carries derivable key material.
func (k *PublicKey) HasExtendedKey() bool {
	return k.PublicExtendedKeyBase58 != ""
}
