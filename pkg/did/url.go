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
	"errors"
	"fmt"

	godid "github.com/nuts-foundation/go-did/did"
)

// ErrRelativeURL is returned for DID URLs without the did:<method>:<id> part,
// such as "#key-1" or "/path".
var ErrRelativeURL = errors.New("DID URL must start with did:<method>:<id>")

// URL is a parsed DID URL such as did:example:123#key-1.
type URL struct {
	// Raw is the input the URL was parsed from.
	Raw string

	// DID is the bare DID without path, query or fragment.
	DID string

	// Method is the DID method name.
	Method string

	// Fragment selects an entry inside the DID Document. Empty when absent.
	Fragment string
}

// ParseURL parses s according to the DID URL grammar. Relative DID URLs are
// rejected. A missing fragment is not an error here; callers that need one
// check HasFragment.
func ParseURL(s string) (*URL, error) {
	parsed, err := godid.ParseDIDURL(s)
	if err != nil {
		return nil, err
	}
	if parsed.DID.Method == "" || parsed.DID.ID == "" {
		return nil, fmt.Errorf("%w: %q", ErrRelativeURL, s)
	}

	return &URL{
		Raw:      s,
		DID:      parsed.DID.String(),
		Method:   parsed.DID.Method,
		Fragment: parsed.Fragment,
	}, nil
}

// HasFragment reports whether the URL selects a document entry.
func (u *URL) HasFragment() bool {
	return u.Fragment != ""
}

// String returns the URL as it was parsed.
func (u *URL) String() string {
	return u.Raw
}

// KeyID returns the full identifier of the entry this URL points at,
// which is the bare DID joined with the fragment.
func (u *URL) KeyID() string {
	if !u.HasFragment() {
		return u.DID
	}
	return fmt.Sprintf("%s#%s", u.DID, u.Fragment)
}
