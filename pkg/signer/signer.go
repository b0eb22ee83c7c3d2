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

package signer

import (
	"context"
	"time"

	"github.com/sage-x-project/idm-signatures/pkg/encoder"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
)

// DefaultKeyPath is the key path recorded when none is given.
const DefaultKeyPath = "m"

// Signer produces signature envelopes over arbitrary data.
type Signer interface {
	// Sign encodes data, hashes it with SHA-256 and signs the digest.
	Sign(ctx context.Context, data encoder.Data) (*signature.Envelope, error)

	// DIDURL returns the DID URL recorded in every envelope.
	DIDURL() string

	// KeyPath returns the key path recorded in every envelope.
	KeyPath() string
}

// Option configures a DefaultSigner.
type Option func(*options)

type options struct {
	keyPath string
	now     func() time.Time
}

// WithKeyPath sets the key path written into envelopes. NewSigner records it
// as given and signs with the key it was handed; NewHDSigner derives the
// signing key at this path instead.
func WithKeyPath(path string) Option {
	return func(o *options) {
		o.keyPath = path
	}
}

// WithClock overrides the clock used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		keyPath: DefaultKeyPath,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
