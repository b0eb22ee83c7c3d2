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
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/idm-signatures/internal/testfixtures"
	"github.com/sage-x-project/idm-signatures/pkg/encoder"
	"github.com/sage-x-project/idm-signatures/pkg/signature"
	"github.com/sage-x-project/idm-signatures/pkg/signer"
	"github.com/sage-x-project/idm-signatures/pkg/verifier"
)

// mockSigner is a mock implementation of signer.Signer for testing
type mockSigner struct {
	signErr error
	signed  []byte
}

func (m *mockSigner) Sign(ctx context.Context, data encoder.Data) (*signature.Envelope, error) {
	if m.signErr != nil {
		return nil, m.signErr
	}
	m.signed, _ = encoder.Encode(data)
	return &signature.Envelope{DIDURL: "did:example:mock#key-1", KeyPath: "m", Value: "c2ln", CreatedAt: 1}, nil
}

func (m *mockSigner) DIDURL() string {
	return "did:example:mock#key-1"
}

func (m *mockSigner) KeyPath() string {
	return "m"
}

func newTestSigner(t *testing.T) signer.Signer {
	t.Helper()
	s, err := signer.NewHDSigner(testfixtures.KeyID, testfixtures.Xprv(t), "m/0/1")
	require.NoError(t, err)
	return s
}

// verifyingServer checks every request's signature and answers 200 or 401
func verifyingServer(t *testing.T) *httptest.Server {
	t.Helper()
	v := verifier.NewVerifier(testfixtures.Resolver(t))

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := signature.DecodeHeader(r.Header.Get(signature.HeaderName))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)

		result, err := v.VerifyJSON(r.Context(), encoder.Raw(body), raw)
		if err != nil || !result.Valid {
			http.Error(w, "invalid", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write(body)
	}))
}

func TestNewClient(t *testing.T) {
	// Setup
	s := newTestSigner(t)

	// Execute
	c := NewClient(s, nil)

	// Assert
	assert.NotNil(t, c)
	assert.Equal(t, http.DefaultClient, c.httpClient)
	assert.Equal(t, testfixtures.KeyID, c.DIDURL())
}

func TestNewClientWithCustomHTTPClient(t *testing.T) {
	httpClient := &http.Client{Timeout: 5 * time.Second}

	c := NewClient(&mockSigner{}, httpClient)

	assert.Same(t, httpClient, c.httpClient)
}

func TestClient_Post(t *testing.T) {
	// Setup
	server := verifyingServer(t)
	defer server.Close()
	c := NewClient(newTestSigner(t), nil)

	// Execute
	resp, err := c.Post(context.Background(), server.URL+"/task", []byte(`{"task":"test"}`))

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"task":"test"}`, string(body))
}

func TestClient_Get(t *testing.T) {
	server := verifyingServer(t)
	defer server.Close()
	c := NewClient(newTestSigner(t), nil)

	resp, err := c.Get(context.Background(), server.URL+"/status")

	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_PostNilBody(t *testing.T) {
	mock := &mockSigner{}
	var header string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get(signature.HeaderName)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	}))
	defer server.Close()

	resp, err := NewClient(mock, nil).Post(context.Background(), server.URL, nil)

	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, header)
	assert.Empty(t, mock.signed)
}

func TestClient_Do(t *testing.T) {
	// Setup
	server := verifyingServer(t)
	defer server.Close()
	c := NewClient(newTestSigner(t), nil)
	req, err := http.NewRequest(http.MethodPut, server.URL+"/data", strings.NewReader("payload"))
	require.NoError(t, err)

	// Execute
	resp, err := c.Do(context.Background(), req)

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_SignsBodyOnly(t *testing.T) {
	mock := &mockSigner{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()
	req, err := http.NewRequest(http.MethodPost, server.URL+"/any?x=1", strings.NewReader("exact bytes"))
	require.NoError(t, err)

	resp, err := NewClient(mock, nil).Do(context.Background(), req)

	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "exact bytes", string(mock.signed))
}

func TestClient_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := NewClient(&mockSigner{}, nil).Get(ctx, "http://127.0.0.1:0")

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_SigningError(t *testing.T) {
	boom := errors.New("sign failed")
	req := httptest.NewRequest(http.MethodPost, "http://example.invalid", strings.NewReader("x"))

	resp, err := NewClient(&mockSigner{signErr: boom}, nil).Do(context.Background(), req)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "failed to sign request")
}

func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	resp, err := NewClient(&mockSigner{}, nil).Get(context.Background(), url)

	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "HTTP request failed")
}

func TestClient_NilRequest(t *testing.T) {
	resp, err := NewClient(&mockSigner{}, nil).Do(context.Background(), nil)

	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestClient_PostInvalidURL(t *testing.T) {
	resp, err := NewClient(&mockSigner{}, nil).Post(context.Background(), "://bad", []byte("x"))

	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to create POST request")
}
