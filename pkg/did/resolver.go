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

package did

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by StaticResolver for unknown DIDs.
var ErrNotFound = errors.New("DID not found")

// Resolver maps a bare DID to its DID Document.
//
// Implementations own the lookup mechanism (registry, network, file). A
// resolver may block; it should honour ctx cancellation.
type Resolver interface {
	Resolve(ctx context.Context, did string) (*Document, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, did string) (*Document, error)

// Resolve calls f(ctx, did).
func (f ResolverFunc) Resolve(ctx context.Context, did string) (*Document, error) {
	return f(ctx, did)
}

// StaticResolver resolves DIDs from a fixed in-memory set of documents.
// It is read-only after construction and safe for concurrent use.
type StaticResolver struct {
	documents map[string]*Document
}

// NewStaticResolver creates a resolver over the given documents, keyed by DID.
func NewStaticResolver(documents map[string]*Document) *StaticResolver {
	docs := make(map[string]*Document, len(documents))
	for k, v := range documents {
		docs[k] = v
	}
	return &StaticResolver{documents: docs}
}

// Resolve returns the document registered for did.
func (r *StaticResolver) Resolve(ctx context.Context, did string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	doc, ok := r.documents[did]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, did)
	}
	return doc, nil
}

// documentsFile is the on-disk layout read by LoadStaticResolver.
// YAML is a superset of JSON so both formats are accepted.
type documentsFile struct {
	Documents map[string]*Document `yaml:"documents"`
}

// LoadStaticResolver reads a YAML or JSON file of the form
//
//	documents:
//	  did:example:123:
//	    publicKey:
//	      - id: did:example:123#key-1
//	        publicExtendedKeyBase58: xpub...
func LoadStaticResolver(path string) (*StaticResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents file: %w", err)
	}
	return ParseStaticResolver(data)
}

// ParseStaticResolver builds a StaticResolver from YAML or JSON bytes.
func ParseStaticResolver(data []byte) (*StaticResolver, error) {
	var file documentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse documents file: %w", err)
	}
	if len(file.Documents) == 0 {
		return nil, fmt.Errorf("documents file contains no documents")
	}

	for id, doc := range file.Documents {
		if doc == nil {
			return nil, fmt.Errorf("document for %s is empty", id)
		}
		if doc.ID == "" {
			doc.ID = id
		}
	}

	return NewStaticResolver(file.Documents), nil
}
