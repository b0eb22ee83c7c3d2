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
	"log"

	"github.com/tyler-smith/go-bip39"

	"github.com/sage-x-project/idm-signatures/pkg/did"
	"github.com/sage-x-project/idm-signatures/pkg/encoder"
	"github.com/sage-x-project/idm-signatures/pkg/hdkey"
	"github.com/sage-x-project/idm-signatures/pkg/signer"
	"github.com/sage-x-project/idm-signatures/pkg/verifier"
)

// This example signs a payload with a key derived from a mnemonic and
// verifies it against an in-memory DID Document
func main() {
	fmt.Println("=== Sign and Verify Example ===")
	fmt.Println()
	ctx := context.Background()

	// Step 1: Derive the identity's master key
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		log.Fatalf("Failed to generate entropy: %v", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		log.Fatalf("Failed to generate mnemonic: %v", err)
	}
	master, err := hdkey.NewMaster(bip39.NewSeed(mnemonic, ""))
	if err != nil {
		log.Fatalf("Failed to derive master key: %v", err)
	}
	fmt.Println("Step 1: Master key derived")
	fmt.Printf("  xpub: %s\n\n", master.Neuter().String())

	// Step 2: Publish the extended public key in a DID Document
	const subject = "did:example:alice"
	const keyID = subject + "#main"
	resolver := did.NewStaticResolver(map[string]*did.Document{
		subject: {
			ID: subject,
			PublicKey: []did.PublicKey{{
				ID:                      keyID,
				Type:                    "Secp256k1VerificationKey2018",
				Controller:              subject,
				PublicExtendedKeyBase58: master.Neuter().String(),
			}},
		},
	})
	fmt.Println("Step 2: DID Document published")
	fmt.Printf("  DID URL: %s\n\n", keyID)

	// Step 3: Sign with a child key
	s, err := signer.NewHDSigner(keyID, master.String(), "m/0/1")
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}
	env, err := s.Sign(ctx, encoder.Value(map[string]any{"message": "hello"}))
	if err != nil {
		log.Fatalf("Failed to sign: %v", err)
	}
	fmt.Println("Step 3: Payload signed")
	fmt.Printf("  keyPath:   %s\n", env.KeyPath)
	fmt.Printf("  createdAt: %d\n", env.CreatedAt)
	fmt.Printf("  value:     %s\n\n", env.Value)

	// Step 4: Verify the original and a tampered payload
	v := verifier.NewVerifier(resolver)
	for _, msg := range []string{"hello", "goodbye"} {
		result, err := v.Verify(ctx, encoder.Value(map[string]any{"message": msg}), env)
		if err != nil {
			log.Fatalf("Verification failed: %v", err)
		}
		if result.Valid {
			fmt.Printf("Step 4: %q is VALID\n", msg)
		} else {
			fmt.Printf("Step 4: %q is INVALID (%s)\n", msg, result.Err.Message)
		}
	}
}
