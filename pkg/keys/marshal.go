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
	"encoding/pem"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// MarshalSEC1 encodes priv as an RFC 5915 ECPrivateKey with the secp256k1
// curve parameters and the uncompressed public point.
func MarshalSEC1(priv *secp256k1.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	var b cryptobyte.Builder
	addSEC1(&b, priv)
	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal EC private key: %w", err)
	}
	return der, nil
}

// MarshalPKCS8 encodes priv as an RFC 5208 PrivateKeyInfo.
func MarshalPKCS8(priv *secp256k1.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidPublicKeyECDSA)
			b.AddASN1ObjectIdentifier(oidCurveSecp256k1)
		})
		b.AddASN1(cbasn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			addSEC1(b, priv)
		})
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal PKCS#8 private key: %w", err)
	}
	return der, nil
}

// MarshalSEC1PEM encodes priv as an "EC PRIVATE KEY" PEM block.
func MarshalSEC1PEM(priv *secp256k1.PrivateKey) ([]byte, error) {
	der, err := MarshalSEC1(priv)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypeEC, Bytes: der}), nil
}

// MarshalPKCS8PEM encodes priv as a "PRIVATE KEY" PEM block.
func MarshalPKCS8PEM(priv *secp256k1.PrivateKey) ([]byte, error) {
	der, err := MarshalPKCS8(priv)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePKCS8, Bytes: der}), nil
}

func addSEC1(b *cryptobyte.Builder, priv *secp256k1.PrivateKey) {
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		b.AddASN1OctetString(priv.Serialize())
		b.AddASN1(cbasn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidCurveSecp256k1)
		})
		b.AddASN1(cbasn1.Tag(1).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1BitString(priv.PubKey().SerializeUncompressed())
		})
	})
}
