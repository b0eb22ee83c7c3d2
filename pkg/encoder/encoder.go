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

package encoder

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// ErrEncoding is wrapped by every failure returned from Encode.
var ErrEncoding = errors.New("encoding failed")

// encMode produces RFC 8949 core deterministic CBOR: shortest integer and
// length forms, definite lengths and bytewise sorted map keys.
var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("encoder: invalid CBOR options: %v", err))
	}
	return em
}

// Data is the input accepted by Encode. It is either raw bytes, passed
// through untouched, or a structured value serialized with deterministic
// CBOR. The zero Data is the structured value nil.
type Data struct {
	raw   []byte
	value any
	isRaw bool
}

// Raw wraps pre-serialized bytes.
func Raw(b []byte) Data {
	return Data{raw: b, isRaw: true}
}

// Value wraps a structured value: maps, slices, numbers, strings, booleans,
// structs and nested combinations thereof.
func Value(v any) Data {
	return Data{value: v}
}

// From picks Raw for byte slices and Value for anything else.
func From(v any) Data {
	switch t := v.(type) {
	case Data:
		return t
	case []byte:
		return Raw(t)
	default:
		return Value(v)
	}
}

// IsRaw reports whether d holds raw bytes.
func (d Data) IsRaw() bool {
	return d.isRaw
}

// maxDepth bounds the nesting of structured values.
const maxDepth = 4096

// Encode turns d into the byte sequence that gets hashed. Raw input is
// copied verbatim; structured input is encoded as deterministic CBOR so
// structurally equal values always produce identical bytes. Cyclic values
// and values nested deeper than maxDepth fail with ErrEncoding.
func Encode(d Data) ([]byte, error) {
	if d.isRaw {
		out := make([]byte, len(d.raw))
		copy(out, d.raw)
		return out, nil
	}

	if err := checkAcyclic(reflect.ValueOf(d.value), map[visit]struct{}{}, 0); err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrEncoding, d.value, err)
	}

	out, err := encMode.Marshal(d.value)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrEncoding, d.value, err)
	}
	return out, nil
}

// visit identifies a reference on the current walk path. Len separates
// slices sharing a backing array.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// checkAcyclic walks v the way the CBOR encoder will and fails on the first
// reference that points back into its own ancestry. Shared references that
// do not form a cycle are allowed.
func checkAcyclic(v reflect.Value, path map[visit]struct{}, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("nesting exceeds %d levels", maxDepth)
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return checkAcyclic(v.Elem(), path, depth+1)

	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() || (v.Kind() != reflect.Pointer && v.Len() == 0) {
			return nil
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if v.Kind() == reflect.Slice {
			key.len = v.Len()
		}
		if _, ok := path[key]; ok {
			return fmt.Errorf("cyclic value of type %s", v.Type())
		}
		path[key] = struct{}{}
		defer delete(path, key)

		switch v.Kind() {
		case reflect.Pointer:
			return checkAcyclic(v.Elem(), path, depth+1)
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				if err := checkAcyclic(iter.Key(), path, depth+1); err != nil {
					return err
				}
				if err := checkAcyclic(iter.Value(), path, depth+1); err != nil {
					return err
				}
			}
			return nil
		default:
			return checkElems(v, path, depth)
		}

	case reflect.Array:
		return checkElems(v, path, depth)

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}
			if err := checkAcyclic(v.Field(i), path, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func checkElems(v reflect.Value, path map[visit]struct{}, depth int) error {
	switch v.Type().Elem().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
	default:
		return nil
	}
	for i := 0; i < v.Len(); i++ {
		if err := checkAcyclic(v.Index(i), path, depth+1); err != nil {
			return err
		}
	}
	return nil
}
