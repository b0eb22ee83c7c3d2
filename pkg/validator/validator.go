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

package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/keys"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
)

// ValidateSignatureShape checks the presence and type of every envelope
// field in a decoded JSON object. It stops at the first violation.
func ValidateSignatureShape(raw map[string]any) error {
	if raw == nil {
		return shapeError("Expecting signature to be an object", "", raw)
	}

	if err := expectNumber(raw, "createdAt"); err != nil {
		return err
	}
	if err := expectString(raw, "value"); err != nil {
		return err
	}
	if err := expectString(raw, "didUrl"); err != nil {
		return err
	}
	return expectString(raw, "keyPath")
}

// ParseSignature decodes a JSON envelope and validates its shape, returning
// a typed Envelope that downstream code can rely on.
func ParseSignature(data []byte) (*signature.Envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, signature.Wrap(signature.CodeInvalidSignatureShape,
			"Expecting signature to be a JSON object", err, map[string]any{"signature": string(data)})
	}

	raw, ok := decoded.(map[string]any)
	if !ok {
		return nil, shapeError("Expecting signature to be an object", "", decoded)
	}
	if err := ValidateSignatureShape(raw); err != nil {
		return nil, err
	}

	createdAt, _ := raw["createdAt"].(json.Number).Int64()
	return &signature.Envelope{
		DIDURL:    raw["didUrl"].(string),
		KeyPath:   raw["keyPath"].(string),
		Value:     raw["value"].(string),
		CreatedAt: createdAt,
	}, nil
}

// ValidateEnvelope is the typed counterpart of ValidateSignatureShape.
// Field types are guaranteed by the struct, so only presence is checked.
func ValidateEnvelope(env *signature.Envelope) error {
	if env == nil {
		return shapeError("Expecting signature to be an object", "", nil)
	}
	return nil
}

// ValidateDIDURL parses didURL and requires a fragment naming the public key.
func ValidateDIDURL(didURL string) (*did.URL, error) {
	props := map[string]any{"didUrl": didURL}

	parsed, err := did.ParseURL(didURL)
	if err != nil {
		return nil, signature.Wrap(signature.CodeInvalidDIDURL, err.Error(), err, props)
	}
	if !parsed.HasFragment() {
		return nil, signature.NewError(signature.CodeInvalidDIDURL,
			"Expecting didUrl to contain the public key via the fragment", props)
	}
	return parsed, nil
}

// ValidateKeyAlgorithm accepts only EC secp256k1 keys.
func ValidateKeyAlgorithm(alg keys.Algorithm) error {
	props := map[string]any{"keyAlgorithm": alg}

	if alg.ID != keys.AlgorithmECPublicKey {
		return signature.NewError(signature.CodeInvalidPrivateKey,
			"Expecting private key to be an EC key", props)
	}
	if alg.NamedCurve != keys.CurveSecp256k1 {
		return signature.NewError(signature.CodeInvalidPrivateKey,
			"Expecting EC private key curve to be secp256k1", props)
	}
	return nil
}

func expectString(raw map[string]any, field string) error {
	if _, ok := raw[field].(string); !ok {
		return shapeError(fmt.Sprintf("Expecting %s to be a string", field), field, raw[field])
	}
	return nil
}

func expectNumber(raw map[string]any, field string) error {
	switch v := raw[field].(type) {
	case json.Number:
		if _, err := v.Int64(); err != nil {
			return shapeError(fmt.Sprintf("Expecting %s to be an integer", field), field, v)
		}
		return nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return shapeError(fmt.Sprintf("Expecting %s to be an integer", field), field, v)
		}
		return nil
	case int, int32, int64, uint, uint32, uint64:
		return nil
	default:
		return shapeError(fmt.Sprintf("Expecting %s to be a number", field), field, v)
	}
}

func shapeError(message, field string, value any) *signature.Error {
	props := map[string]any{"value": value}
	if field != "" {
		props["field"] = field
	}
	return signature.NewError(signature.CodeInvalidSignatureShape, message, props)
}
