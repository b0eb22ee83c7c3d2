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

// Package server provides HTTP middleware that authenticates requests
// carrying an Idm-Signature header.
//
// # Basic Usage
//
//	v := verifier.NewVerifier(resolver)
//	middleware := server.NewSignatureAuthMiddleware(v)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    didURL, ok := server.DIDURLFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Fprintf(w, "Authenticated as: %s", didURL)
//	})
//
//	http.Handle("/api/", middleware.Wrap(handler))
//
// # Optional Verification
//
//	middleware := server.NewSignatureAuthMiddleware(v, server.WithOptional(true))
//
// # Custom Error Handler
//
//	middleware := server.NewSignatureAuthMiddleware(v,
//	    server.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	        http.Error(w, "Custom error message", http.StatusForbidden)
//	    }))
//
// # How It Works
//
// For each request the middleware:
//
//  1. Skips verification for OPTIONS requests (CORS preflight)
//  2. Decodes the base64url JSON envelope from the Idm-Signature header
//  3. Reads the request body and verifies the envelope over its raw bytes
//  4. Restores the body and stores the verified envelope in the context
//  5. Calls the next handler
//
// An invalid signature yields 401 Unauthorized. A failing DID resolver
// yields 502 Bad Gateway. The next handler is not called in either case.
package server
