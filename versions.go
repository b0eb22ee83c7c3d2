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

// Package idmsignatures provides version information for idm-signatures.
package idmsignatures

const (
	// Version is the current version of idm-signatures
	Version = "1.0.0"

	// EnvelopeFormatVersion identifies the signature envelope wire shape
	// {didUrl, keyPath, value, createdAt}.
	EnvelopeFormatVersion = "1"

	// SignatureAlgorithm is the signature scheme applied to the SHA-256
	// digest of the encoded data.
	SignatureAlgorithm = "ES256K"

	// DataEncoding is the canonical encoding of non-byte data.
	DataEncoding = "cbor-core-deterministic"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	Version               string
	EnvelopeFormatVersion string
	SignatureAlgorithm    string
	DataEncoding          string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:               Version,
		EnvelopeFormatVersion: EnvelopeFormatVersion,
		SignatureAlgorithm:    SignatureAlgorithm,
		DataEncoding:          DataEncoding,
	}
}
