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

package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sage-x-project/idm-signatures/pkg/encoder"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
	"github.com/sage-x-project/idm-signatures/pkg/validator"
	"github.com/sage-x-project/idm-signatures/pkg/verifier"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const envelopeKey contextKey = "idm_signature"

// DefaultMaxBodySize is the largest request body read for verification.
const DefaultMaxBodySize int64 = 10 << 20

var (
	// ErrMissingSignature is passed to the error handler when the request
	// carries no Idm-Signature header.
	ErrMissingSignature = errors.New("missing " + signature.HeaderName + " header")

	// ErrMalformedHeader means the header is not base64url encoded JSON.
	ErrMalformedHeader = errors.New("malformed " + signature.HeaderName + " header")

	// ErrResolution wraps failures of the DID resolver.
	ErrResolution = errors.New("DID resolution failed")

	// ErrBodyTooLarge means the body exceeds the configured maximum.
	ErrBodyTooLarge = errors.New("request body too large")
)

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Option configures a SignatureAuthMiddleware.
type Option func(*SignatureAuthMiddleware)

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(m *SignatureAuthMiddleware) {
		m.errorHandler = handler
	}
}

// WithOptional lets requests without a signature header pass through
// without an envelope in their context.
func WithOptional(optional bool) Option {
	return func(m *SignatureAuthMiddleware) {
		m.optional = optional
	}
}

// WithLogger sets the logger for authentication failures.
func WithLogger(logger *slog.Logger) Option {
	return func(m *SignatureAuthMiddleware) {
		m.logger = logger
	}
}

// WithMaxBodySize limits how many body bytes are read for verification.
// Values <= 0 keep DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(m *SignatureAuthMiddleware) {
		if n > 0 {
			m.maxBodySize = n
		}
	}
}

// SignatureAuthMiddleware verifies the Idm-Signature header of incoming
// requests against the request body.
type SignatureAuthMiddleware struct {
	verifier     verifier.Verifier
	errorHandler ErrorHandler
	optional     bool
	maxBodySize  int64
	logger       *slog.Logger
}

// NewSignatureAuthMiddleware creates a new signature authentication middleware
func NewSignatureAuthMiddleware(v verifier.Verifier, opts ...Option) *SignatureAuthMiddleware {
	m := &SignatureAuthMiddleware{
		verifier:     v,
		errorHandler: defaultErrorHandler,
		maxBodySize:  DefaultMaxBodySize,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Wrap wraps an HTTP handler with signature authentication
func (m *SignatureAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(signature.HeaderName)
		if header == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.fail(w, r, ErrMissingSignature)
			return
		}

		raw, err := signature.DecodeHeader(header)
		if err != nil {
			m.fail(w, r, fmt.Errorf("%w: %v", ErrMalformedHeader, err))
			return
		}

		var body []byte
		if r.Body != nil {
			body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, m.maxBodySize))
			r.Body.Close()
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					err = fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
				}
				m.fail(w, r, fmt.Errorf("failed to read body: %w", err))
				return
			}
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		ctx := r.Context()
		result, err := m.verifier.VerifyJSON(ctx, encoder.Raw(body), raw)
		if err != nil {
			m.fail(w, r, fmt.Errorf("%w: %w", ErrResolution, err))
			return
		}
		if !result.Valid {
			m.fail(w, r, result.Err)
			return
		}

		env, err := validator.ParseSignature(raw)
		if err != nil {
			m.fail(w, r, err)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, envelopeKey, env)))
	})
}

func (m *SignatureAuthMiddleware) fail(w http.ResponseWriter, r *http.Request, err error) {
	m.logger.InfoContext(r.Context(), "request signature rejected",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	m.errorHandler(w, r, err)
}

// EnvelopeFromContext returns the verified envelope stored by the middleware.
func EnvelopeFromContext(ctx context.Context) (*signature.Envelope, bool) {
	env, ok := ctx.Value(envelopeKey).(*signature.Envelope)
	return env, ok
}

// DIDURLFromContext returns the DID URL of the verified signer.
func DIDURLFromContext(ctx context.Context) (string, bool) {
	env, ok := EnvelopeFromContext(ctx)
	if !ok {
		return "", false
	}
	return env.DIDURL, true
}

// StatusCode maps a middleware error to an HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrResolution):
		return http.StatusBadGateway
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusUnauthorized
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	http.Error(w, fmt.Sprintf("%s: %s", http.StatusText(status), err.Error()), status)
}
