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
	"bytes"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Format is the container a private key was imported from.
type Format string

const (
	FormatRawPEM   Format = "raw-pem"
	FormatRawDER   Format = "raw-der"
	FormatPKCS8PEM Format = "pkcs8-pem"
	FormatPKCS8DER Format = "pkcs8-der"
)

const (
	pemTypeEC    = "EC PRIVATE KEY"
	pemTypePKCS8 = "PRIVATE KEY"
)

var (
	// ErrUnsupportedFormat means the material is not SEC1 or PKCS#8, PEM or DER.
	ErrUnsupportedFormat = errors.New("unsupported private key format")

	// ErrMalformedKey means the container was recognised but is not well formed.
	ErrMalformedKey = errors.New("malformed private key")

	// ErrNotSecp256k1 is returned when a secp256k1 scalar is requested from another key family.
	ErrNotSecp256k1 = errors.New("private key is not an EC secp256k1 key")
)

// PrivateKey is a decomposed private key: its algorithm descriptor plus the
// raw key data.
type PrivateKey struct {
	Format    Format
	Algorithm Algorithm

	// D is the private scalar for EC keys and the seed for Ed25519 keys.
	// Empty for families whose key data is not extracted.
	D []byte

	// PublicKey is the encoded public point when the container carries one.
	PublicKey []byte
}

// Decompose parses private key material in any of the supported formats.
// It does not judge the algorithm; see validator.ValidateKeyAlgorithm.
func Decompose(material []byte) (*PrivateKey, error) {
	trimmed := bytes.TrimSpace(material)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty key material", ErrUnsupportedFormat)
	}

	if bytes.HasPrefix(trimmed, []byte("-----BEGIN")) {
		return decomposePEM(trimmed)
	}
	return decomposeDER(trimmed)
}

func decomposePEM(material []byte) (*PrivateKey, error) {
	block, _ := pem.Decode(material)
	if block == nil {
		return nil, fmt.Errorf("%w: invalid PEM block", ErrMalformedKey)
	}

	switch block.Type {
	case pemTypeEC:
		key, err := parseSEC1(block.Bytes, nil)
		if err != nil {
			return nil, err
		}
		key.Format = FormatRawPEM
		return key, nil
	case pemTypePKCS8:
		key, err := parsePKCS8(block.Bytes)
		if err != nil {
			return nil, err
		}
		key.Format = FormatPKCS8PEM
		return key, nil
	default:
		return nil, fmt.Errorf("%w: PEM type %q", ErrUnsupportedFormat, block.Type)
	}
}

func decomposeDER(der []byte) (*PrivateKey, error) {
	if key, err := parsePKCS8(der); err == nil {
		key.Format = FormatPKCS8DER
		return key, nil
	}
	if key, err := parseSEC1(der, nil); err == nil {
		key.Format = FormatRawDER
		return key, nil
	}
	return nil, fmt.Errorf("%w: expected SEC1 or PKCS#8 DER", ErrUnsupportedFormat)
}

// parseSEC1 parses an RFC 5915 ECPrivateKey. curve is used when the
// structure omits its own parameters, as it may inside PKCS#8.
func parseSEC1(der []byte, curve asn1.ObjectIdentifier) (*PrivateKey, error) {
	input := cryptobyte.String(der)

	var (
		seq     cryptobyte.String
		version int
		priv    cryptobyte.String
	)
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: invalid EC private key structure", ErrMalformedKey)
	}
	if !seq.ReadASN1Integer(&version) || version != 1 {
		return nil, fmt.Errorf("%w: unsupported EC private key version", ErrMalformedKey)
	}
	if !seq.ReadASN1(&priv, cbasn1.OCTET_STRING) {
		return nil, fmt.Errorf("%w: invalid EC private key scalar", ErrMalformedKey)
	}

	var (
		params    cryptobyte.String
		hasParams bool
	)
	if !seq.ReadOptionalASN1(&params, &hasParams, cbasn1.Tag(0).Constructed().ContextSpecific()) {
		return nil, fmt.Errorf("%w: invalid EC parameters", ErrMalformedKey)
	}
	if hasParams {
		var named asn1.ObjectIdentifier
		if !params.ReadASN1ObjectIdentifier(&named) {
			return nil, fmt.Errorf("%w: EC parameters must be a named curve", ErrMalformedKey)
		}
		curve = named
	}

	var (
		pubField cryptobyte.String
		hasPub   bool
		pub      []byte
	)
	if !seq.ReadOptionalASN1(&pubField, &hasPub, cbasn1.Tag(1).Constructed().ContextSpecific()) {
		return nil, fmt.Errorf("%w: invalid EC public key", ErrMalformedKey)
	}
	if hasPub {
		var bits asn1.BitString
		if !pubField.ReadASN1BitString(&bits) {
			return nil, fmt.Errorf("%w: invalid EC public key", ErrMalformedKey)
		}
		pub = bits.RightAlign()
	}

	return &PrivateKey{
		Algorithm: Algorithm{
			ID:         AlgorithmECPublicKey,
			NamedCurve: curveName(curve),
		},
		D:         append([]byte(nil), priv...),
		PublicKey: pub,
	}, nil
}

// parsePKCS8 parses an RFC 5208 PrivateKeyInfo.
func parsePKCS8(der []byte) (*PrivateKey, error) {
	input := cryptobyte.String(der)

	var (
		seq     cryptobyte.String
		version int
		algID   cryptobyte.String
		algOID  asn1.ObjectIdentifier
		privKey cryptobyte.String
	)
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: invalid PKCS#8 structure", ErrMalformedKey)
	}
	if !seq.ReadASN1Integer(&version) || (version != 0 && version != 1) {
		return nil, fmt.Errorf("%w: unsupported PKCS#8 version", ErrMalformedKey)
	}
	if !seq.ReadASN1(&algID, cbasn1.SEQUENCE) || !algID.ReadASN1ObjectIdentifier(&algOID) {
		return nil, fmt.Errorf("%w: invalid PKCS#8 algorithm identifier", ErrMalformedKey)
	}

	var curve asn1.ObjectIdentifier
	if algID.PeekASN1Tag(cbasn1.OBJECT_IDENTIFIER) && !algID.ReadASN1ObjectIdentifier(&curve) {
		return nil, fmt.Errorf("%w: invalid PKCS#8 algorithm parameters", ErrMalformedKey)
	}

	if !seq.ReadASN1(&privKey, cbasn1.OCTET_STRING) {
		return nil, fmt.Errorf("%w: invalid PKCS#8 private key", ErrMalformedKey)
	}

	switch {
	case algOID.Equal(oidPublicKeyECDSA):
		return parseSEC1(privKey, curve)
	case algOID.Equal(oidPublicKeyEd25519):
		var seed cryptobyte.String
		if !privKey.ReadASN1(&seed, cbasn1.OCTET_STRING) {
			return nil, fmt.Errorf("%w: invalid Ed25519 private key", ErrMalformedKey)
		}
		return &PrivateKey{
			Algorithm: Algorithm{ID: AlgorithmEd25519},
			D:         append([]byte(nil), seed...),
		}, nil
	default:
		return &PrivateKey{
			Algorithm: Algorithm{ID: algorithmName(algOID)},
		}, nil
	}
}

// Secp256k1 returns the key as a secp256k1 private key. The scalar must be
// in [1, N-1].
func (k *PrivateKey) Secp256k1() (*secp256k1.PrivateKey, error) {
	if !k.Algorithm.IsSecp256k1() {
		return nil, ErrNotSecp256k1
	}
	if len(k.D) == 0 || len(k.D) > 32 {
		return nil, fmt.Errorf("%w: scalar must be 1 to 32 bytes, got %d", ErrMalformedKey, len(k.D))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(k.D); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: scalar out of range", ErrMalformedKey)
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}
