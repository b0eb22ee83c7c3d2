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

// Package encoder turns application data into the deterministic byte
// sequence that is hashed and signed.
//
// Callers choose between two cases:
//
//	encoder.Raw(body)                          // bytes, hashed as-is
//	encoder.Value(map[string]any{"a": 1})      // deterministic CBOR
//
// encoder.From picks the case from the dynamic type.
package encoder
