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

// Package client provides an HTTP client that signs request bodies.
//
// # Basic Usage
//
//	s, _ := signer.NewSigner("did:example:123#key-1", pemBytes)
//	c := client.NewClient(s, nil)
//
//	// Send POST request (automatically signed)
//	resp, err := c.Post(ctx, "https://agent.example.com/api/task", []byte(`{"task":"process"}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer resp.Body.Close()
//
// # Custom HTTP Client
//
//	httpClient := &http.Client{
//	    Timeout: 30 * time.Second,
//	}
//	c := client.NewClient(s, httpClient)
//
// # Custom Requests
//
//	req, _ := http.NewRequest("PUT", "https://agent.example.com/api/data", body)
//	resp, err := c.Do(ctx, req)
//
// # How It Works
//
// The raw body bytes are signed as-is (no canonical re-encoding) and the
// resulting envelope is sent as base64url JSON in the Idm-Signature header.
// Only the body is covered by the signature; method, URL and other headers
// are not. The server package verifies the same bytes.
package client
