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

package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/sage-x-project/idm-signatures/pkg/signer"
	"github.com/sage-x-project/idm-signatures/pkg/transport"
)

// Client is an HTTP client that signs every request body and sends the
// envelope in the Idm-Signature header.
type Client struct {
	signer     signer.Signer
	httpClient *http.Client
}

// NewClient creates a new signing client
// If httpClient is nil, http.DefaultClient is used
func NewClient(s signer.Signer, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		signer:     s,
		httpClient: httpClient,
	}
}

// Do signs the request body and executes the request. A request without a
// body is signed over the empty byte string.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	// Check context first
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	req = req.WithContext(ctx)
	if err := transport.SignRequest(ctx, c.signer, req); err != nil {
		return nil, err
	}

	// Execute the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return resp, nil
}

// Post sends a POST request with JSON body and automatic signature
func (c *Client) Post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.Do(ctx, req)
}

// Get sends a GET request with automatic signature
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	return c.Do(ctx, req)
}

// DIDURL returns the DID URL requests are signed as
func (c *Client) DIDURL() string {
	return c.signer.DIDURL()
}
