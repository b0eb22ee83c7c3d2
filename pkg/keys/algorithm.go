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

package keys

import (
	"encoding/asn1"
)

// Algorithm identifiers reported in Algorithm.ID.
const (
	AlgorithmECPublicKey   = "ec-public-key"
	AlgorithmEd25519       = "ed25519"
	AlgorithmRSAEncryption = "rsa-encryption"
)

// Curve names reported in Algorithm.NamedCurve.
const (
	CurveSecp256k1 = "secp256k1"
	CurveSecp256r1 = "secp256r1"
	CurveSecp384r1 = "secp384r1"
	CurveSecp521r1 = "secp521r1"
)

var (
	oidPublicKeyECDSA   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidPublicKeyEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
	oidPublicKeyRSA     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

	oidCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidCurveSecp256r1 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidCurveSecp384r1 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidCurveSecp521r1 = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
)

// Algorithm describes the cryptographic family of an imported key.
type Algorithm struct {
	// ID is the key family, e.g. "ec-public-key".
	ID string `json:"id"`

	// NamedCurve is set for EC keys, e.g. "secp256k1".
	NamedCurve string `json:"namedCurve,omitempty"`
}

// IsSecp256k1 reports whether the descriptor names an EC secp256k1 key.
func (a Algorithm) IsSecp256k1() bool {
	return a.ID == AlgorithmECPublicKey && a.NamedCurve == CurveSecp256k1
}

func algorithmName(oid asn1.ObjectIdentifier) string {
	switch {
	case oid.Equal(oidPublicKeyECDSA):
		return AlgorithmECPublicKey
	case oid.Equal(oidPublicKeyEd25519):
		return AlgorithmEd25519
	case oid.Equal(oidPublicKeyRSA):
		return AlgorithmRSAEncryption
	default:
		return oid.String()
	}
}

func curveName(oid asn1.ObjectIdentifier) string {
	switch {
	case len(oid) == 0:
		return ""
	case oid.Equal(oidCurveSecp256k1):
		return CurveSecp256k1
	case oid.Equal(oidCurveSecp256r1):
		return CurveSecp256r1
	case oid.Equal(oidCurveSecp384r1):
		return CurveSecp384r1
	case oid.Equal(oidCurveSecp521r1):
		return CurveSecp521r1
	default:
		return oid.String()
	}
}
