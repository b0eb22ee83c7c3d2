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
	"context"
	"log/slog"

	"github.com/sage-x-project/idm-signatures/pkg/encoder"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
)

// Verifier checks signature envelopes against data and the signer's DID Document.
type Verifier interface {
	// Verify returns a verdict for env over data. The error is non-nil only
	// when the verdict could not be reached, i.e. DID resolution failed or
	// ctx was done.
	Verify(ctx context.Context, data encoder.Data, env *signature.Envelope) (*Result, error)

	// VerifyJSON parses a JSON envelope and verifies it. A malformed
	// envelope yields an invalid verdict, not an error.
	VerifyJSON(ctx context.Context, data encoder.Data, raw []byte) (*Result, error)
}

// Result is a verification verdict. Err is set if and only if Valid is false.
type Result struct {
	Valid bool
	Err   *signature.Error
}

// Error returns the reason the signature was rejected, or nil when valid.
func (r *Result) Error() error {
	if r == nil || r.Err == nil {
		return nil
	}
	return r.Err
}

// Option configures a DefaultVerifier.
type Option func(*DefaultVerifier)

// WithKeySelector replaces the default key selection and derivation.
func WithKeySelector(selector KeySelector) Option {
	return func(v *DefaultVerifier) {
		v.selector = selector
	}
}

// WithLogger sets the logger used for rejected signatures.
func WithLogger(logger *slog.Logger) Option {
	return func(v *DefaultVerifier) {
		v.logger = logger
	}
}
