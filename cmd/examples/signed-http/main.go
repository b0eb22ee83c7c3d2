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

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/tyler-smith/go-bip39"

	"github.com/sage-x-project/idm-signatures/pkg/client"
	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/hdkey"
	"github.com/sage-x-project/idm-signatures/pkg/server"
	"github.com/sage-x-project/idm-signatures/pkg/signer"
	"github.com/sage-x-project/idm-signatures/pkg/verifier"
)

// This example runs an HTTP service protected by signature authentication
// and calls it with a signing client
func main() {
	fmt.Println("=== Signed HTTP Example ===")
	fmt.Println()

	// Step 1: Create the caller's identity
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	master, err := hdkey.NewMaster(bip39.NewSeed(mnemonic, ""))
	if err != nil {
		log.Fatalf("Failed to derive master key: %v", err)
	}
	const subject = "did:example:caller"
	const keyID = subject + "#key-1"
	resolver := did.NewStaticResolver(map[string]*did.Document{
		subject: {ID: subject, PublicKey: []did.PublicKey{{ID: keyID, PublicExtendedKeyBase58: master.Neuter().String()}}},
	})
	fmt.Printf("Step 1: Identity %s ready\n\n", keyID)

	// Step 2: Start the protected service
	auth := server.NewSignatureAuthMiddleware(verifier.NewVerifier(resolver))
	srv := httptest.NewServer(auth.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, _ := server.DIDURLFromContext(r.Context())
		fmt.Fprintf(w, "hello %s", caller)
	})))
	defer srv.Close()
	fmt.Printf("Step 2: Service listening on %s\n\n", srv.URL)

	// Step 3: Call it signed and unsigned
	s, err := signer.NewHDSigner(keyID, master.String(), "m/0")
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}
	signed := client.NewClient(s, nil)

	resp, err := signed.Post(context.Background(), srv.URL, []byte(`{"ping":true}`))
	if err != nil {
		log.Fatalf("Signed request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Printf("Step 3: signed request   -> %d %s\n", resp.StatusCode, body)

	resp, err = http.Post(srv.URL, "application/json", nil)
	if err != nil {
		log.Fatalf("Unsigned request failed: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Printf("Step 3: unsigned request -> %d %s", resp.StatusCode, body)
}
