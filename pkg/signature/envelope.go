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

package signature

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// HeaderName is the HTTP header carrying an encoded envelope.
const HeaderName = "Idm-Signature"

// Envelope is the metadata produced by signing and consumed by verification.
//
// It carries no binding to the signed data other than the signature value
// itself; verification recomputes that binding.
type Envelope struct {
	// DIDURL is the signer's DID URL; its fragment names the public key entry.
	DIDURL string `json:"didUrl"`

	// KeyPath is the BIP32 derivation path of the key that produced Value.
	KeyPath string `json:"keyPath"`

	// Value is the base64 encoded DER signature.
	Value string `json:"value"`

	// CreatedAt is the signing time in epoch milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// CreatedTime returns CreatedAt as a time.Time.
func (e *Envelope) CreatedTime() time.Time {
	return time.UnixMilli(e.CreatedAt)
}

// SignatureBytes decodes Value into DER bytes.
func (e *Envelope) SignatureBytes() ([]byte, error) {
	der, err := base64.StdEncoding.DecodeString(e.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature value: %w", err)
	}
	return der, nil
}

// EncodeHeader serializes the envelope for transport in HeaderName.
func EncodeHeader(env *Envelope) (string, error) {
	if env == nil {
		return "", fmt.Errorf("envelope cannot be nil")
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeHeader returns the raw JSON envelope carried in a header value.
// The result still has to go through shape validation.
func DecodeHeader(value string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s header: %w", HeaderName, err)
	}
	return raw, nil
}
