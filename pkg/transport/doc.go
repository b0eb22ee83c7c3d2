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

// Package transport signs outgoing HTTP requests with an Idm-Signature header.
//
// # Usage
//
// Wrap any http.Client so every request body is signed:
//
//	s, _ := signer.NewSigner("did:example:123#key-1", pemBytes)
//	httpClient := transport.NewHTTPClient(s, nil)
//	resp, err := httpClient.Post(url, "application/json", body)
//
// Or use the RoundTripper directly:
//
//	httpClient := &http.Client{
//	    Transport: transport.NewSigningTransport(s, http.DefaultTransport),
//	    Timeout:   30 * time.Second,
//	}
//
// SignRequest is the primitive both build on, and is also used by the
// client package.
//
// # Architecture
//
//	http.Client
//	    └─→ SigningTransport
//	        └─→ Base RoundTripper
//	            └─→ Network
//
// # Security
//
// Only the request body is signed. Method, URL and headers are not covered,
// and the envelope's createdAt is not checked by the server middleware, so
// replay protection has to come from the application.
package transport
