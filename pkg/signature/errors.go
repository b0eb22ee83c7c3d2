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

package signature

import (
	"fmt"
)

// Code discriminates the kinds of failures produced while signing or verifying.
type Code string

const (
	// CodeInvalidSignature is the verdict-level failure reported by verification.
	CodeInvalidSignature Code = "INVALID_SIGNATURE"

	// CodeInvalidSignatureShape means an envelope field is missing or mis-typed.
	CodeInvalidSignatureShape Code = "INVALID_SIGNATURE_SHAPE"

	// CodeInvalidPrivateKey means the private key is not an EC secp256k1 key.
	CodeInvalidPrivateKey Code = "INVALID_PRIVATE_KEY"

	// CodeInvalidDIDURL means the DID URL is malformed or has no fragment.
	CodeInvalidDIDURL Code = "INVALID_DID_URL"
)

// Sentinels for errors.Is. They match any *Error carrying the same code.
var (
	ErrInvalidSignature      = &Error{Code: CodeInvalidSignature}
	ErrInvalidSignatureShape = &Error{Code: CodeInvalidSignatureShape}
	ErrInvalidPrivateKey     = &Error{Code: CodeInvalidPrivateKey}
	ErrInvalidDIDURL         = &Error{Code: CodeInvalidDIDURL}
)

var codeNames = map[Code]string{
	CodeInvalidSignature:      "InvalidSignatureError",
	CodeInvalidSignatureShape: "InvalidSignatureShapeError",
	CodeInvalidPrivateKey:     "InvalidPrivateKey",
	CodeInvalidDIDURL:         "InvalidDidUrl",
}

// Error is a coded failure carrying a human readable message and the
// offending values for diagnostics.
type Error struct {
	Code    Code
	Message string
	Props   map[string]any
	Err     error
}

// NewError creates an Error with the given code, message and props.
func NewError(code Code, message string, props map[string]any) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Props:   props,
	}
}

// Wrap creates an Error that keeps err as its cause.
func Wrap(code Code, message string, err error, props map[string]any) *Error {
	e := NewError(code, message, props)
	e.Err = err
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Name returns the error kind name, e.g. "InvalidDidUrl".
func (e *Error) Name() string {
	if name, ok := codeNames[e.Code]; ok {
		return name
	}
	return string(e.Code)
}

// Prop returns a single diagnostic value.
func (e *Error) Prop(key string) (any, bool) {
	if e.Props == nil {
		return nil, false
	}
	v, ok := e.Props[key]
	return v, ok
}
