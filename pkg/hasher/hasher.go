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

package hasher

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	sha256 "github.com/minio/sha256-simd"
)

// Algorithm identifies a digest algorithm.
type Algorithm string

const (
	SHA1   Algorithm = "SHA-1"
	SHA256 Algorithm = "SHA-256"
	SHA384 Algorithm = "SHA-384"
	SHA512 Algorithm = "SHA-512"
)

// ErrHash is wrapped by every failure returned from Hash.
var ErrHash = errors.New("hash failed")

var providers = map[Algorithm]func() hash.Hash{
	SHA1:   sha1.New,
	SHA256: sha256.New,
	SHA384: sha512.New384,
	SHA512: sha512.New,
}

// String returns the algorithm identifier.
func (a Algorithm) String() string {
	return string(a)
}

// Supported reports whether a provider exists for a.
func (a Algorithm) Supported() bool {
	_, ok := providers[a]
	return ok
}

// Hash returns the digest of data under alg.
func Hash(ctx context.Context, data []byte, alg Algorithm) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: context error: %w", ErrHash, err)
	}

	newHash, ok := providers[alg]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrHash, alg)
	}

	h := newHash()
	if _, err := h.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHash, err)
	}
	return h.Sum(nil), nil
}

// Size returns the digest length of alg in bytes.
func Size(alg Algorithm) (int, error) {
	newHash, ok := providers[alg]
	if !ok {
		return 0, fmt.Errorf("%w: unsupported algorithm %q", ErrHash, alg)
	}
	return newHash().Size(), nil
}
