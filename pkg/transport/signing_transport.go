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

package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sage-x-project/idm-signatures/pkg/encoder"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
	"github.com/sage-x-project/idm-signatures/pkg/signer"
)

// SignRequest signs the body of req and sets the Idm-Signature header.
// The body is consumed and replaced with a rewindable copy; a request
// without a body is signed over the empty byte string.
func SignRequest(ctx context.Context, s signer.Signer, req *http.Request) error {
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}

	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read request body: %w", err)
		}
	}

	env, err := s.Sign(ctx, encoder.Raw(body))
	if err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}
	header, err := signature.EncodeHeader(env)
	if err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}

	req.Header.Set(signature.HeaderName, header)
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return nil
}

// SigningTransport is an http.RoundTripper that signs every outgoing
// request body before handing it to Base.
type SigningTransport struct {
	Signer signer.Signer

	// Base is the underlying transport. http.DefaultTransport when nil.
	Base http.RoundTripper
}

// NewSigningTransport wraps base so that every request is signed by s.
func NewSigningTransport(s signer.Signer, base http.RoundTripper) *SigningTransport {
	return &SigningTransport{Signer: s, Base: base}
}

// RoundTrip implements http.RoundTripper. The caller's request is not
// modified; a signed clone is sent instead.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if err := SignRequest(req.Context(), t.Signer, clone); err != nil {
		return nil, err
	}
	return t.base().RoundTrip(clone)
}

func (t *SigningTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// NewHTTPClient returns an http.Client whose requests are all signed by s.
func NewHTTPClient(s signer.Signer, base *http.Client) *http.Client {
	c := &http.Client{}
	if base != nil {
		*c = *base
	}
	c.Transport = NewSigningTransport(s, c.Transport)
	return c
}
