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
	"errors"
	"fmt"
	"log/slog"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/encoder"
	"github.com/sage-x-project/idm-signatures/pkg/hasher"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
	"github.com/sage-x-project/idm-signatures/pkg/validator"
)

const msgSignatureMismatch = "Signature mismatch"

// DefaultVerifier verifies envelopes using a DID resolver and a KeySelector.
// It holds no mutable state and is safe for concurrent use.
type DefaultVerifier struct {
	resolver did.Resolver
	selector KeySelector
	logger   *slog.Logger
}

// NewVerifier creates a verifier that resolves DIDs with resolver.
func NewVerifier(resolver did.Resolver, opts ...Option) *DefaultVerifier {
	v := &DefaultVerifier{
		resolver: resolver,
		selector: NewDefaultKeySelector(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyJSON implements Verifier.
func (v *DefaultVerifier) VerifyJSON(ctx context.Context, data encoder.Data, raw []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	env, err := validator.ParseSignature(raw)
	if err != nil {
		return v.reject(ctx, "", err), nil
	}
	return v.Verify(ctx, data, env)
}

// Verify implements Verifier.
func (v *DefaultVerifier) Verify(ctx context.Context, data encoder.Data, env *signature.Envelope) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validator.ValidateEnvelope(env); err != nil {
		return v.reject(ctx, "", err), nil
	}

	didURL, err := validator.ValidateDIDURL(env.DIDURL)
	if err != nil {
		return v.reject(ctx, env.DIDURL, err), nil
	}

	doc, err := v.resolver.Resolve(ctx, didURL.DID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve DID %s: %w", didURL.DID, err)
	}

	pub, err := v.selector.SelectKey(doc, env.DIDURL, env.KeyPath)
	if err != nil {
		return v.reject(ctx, env.DIDURL, err), nil
	}

	encoded, err := encoder.Encode(data)
	if err != nil {
		return v.reject(ctx, env.DIDURL, err), nil
	}

	digest, err := hasher.Hash(ctx, encoded, hasher.SHA256)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("context error: %w", ctxErr)
		}
		return v.reject(ctx, env.DIDURL, err), nil
	}

	der, err := env.SignatureBytes()
	if err != nil {
		return v.reject(ctx, env.DIDURL, signature.Wrap(signature.CodeInvalidSignature, msgSignatureMismatch, err, nil)), nil
	}

	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return v.reject(ctx, env.DIDURL, signature.Wrap(signature.CodeInvalidSignature, msgSignatureMismatch, err, nil)), nil
	}

	if !sig.Verify(digest, pub) {
		return v.reject(ctx, env.DIDURL, signature.NewError(signature.CodeInvalidSignature, msgSignatureMismatch, nil)), nil
	}

	return &Result{Valid: true}, nil
}

// reject turns any failure into an invalid verdict. Errors that already
// carry CodeInvalidSignature are kept; anything else becomes the cause of a
// new one with the same message.
func (v *DefaultVerifier) reject(ctx context.Context, didURL string, err error) *Result {
	var sigErr *signature.Error
	switch {
	case errors.As(err, &sigErr) && sigErr.Code == signature.CodeInvalidSignature:
	case sigErr != nil:
		sigErr = signature.Wrap(signature.CodeInvalidSignature, sigErr.Message, err, sigErr.Props)
	default:
		sigErr = signature.Wrap(signature.CodeInvalidSignature, err.Error(), err, nil)
	}

	v.logger.DebugContext(ctx, "signature rejected",
		slog.String("didUrl", didURL),
		slog.String("reason", sigErr.Message))

	return &Result{Valid: false, Err: sigErr}
}
