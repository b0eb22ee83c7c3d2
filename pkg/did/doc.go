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

// Package did holds the DID types this module reads: parsed DID URLs, the
// public key section of DID Documents and the Resolver boundary.
//
// Resolution itself is external. Callers plug their registry or network
// lookup in through Resolver or ResolverFunc:
//
//	resolver := did.ResolverFunc(func(ctx context.Context, id string) (*did.Document, error) {
//	    return registry.Lookup(ctx, id)
//	})
//
// StaticResolver serves a fixed set of documents and is meant for tools and
// tests.
package did
