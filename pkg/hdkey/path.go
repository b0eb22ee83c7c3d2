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

package hdkey

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset is added to an index marked with a trailing apostrophe.
const HardenedOffset uint32 = 0x80000000

// ParsePath parses a derivation path such as "m/0/1" or "m/44'/0'".
//
// "m" (or "M", "m'", "M'") on its own is the identity path and yields no
// indexes. Every other path starts with "m/" or "M/" followed by decimal
// indexes below 2^31, each optionally hardened with "'".
func ParsePath(path string) ([]uint32, error) {
	switch path {
	case "m", "M", "m'", "M'":
		return nil, nil
	}

	parts := strings.Split(path, "/")
	if parts[0] != "m" && parts[0] != "M" {
		return nil, fmt.Errorf("%w: path must start with \"m\" or \"M\": %q", ErrInvalidPath, path)
	}

	indexes := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		index, err := parseIndex(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPath, path, err)
		}
		indexes = append(indexes, index)
	}
	return indexes, nil
}

func parseIndex(part string) (uint32, error) {
	hardened := false
	if len(part) > 1 && strings.HasSuffix(part, "'") {
		hardened = true
		part = strings.TrimSuffix(part, "'")
	}

	if part == "" {
		return 0, fmt.Errorf("empty path component")
	}
	for _, c := range part {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid path component %q", part)
		}
	}

	n, err := strconv.ParseUint(part, 10, 32)
	if err != nil || uint32(n) >= HardenedOffset {
		return 0, fmt.Errorf("invalid index %s", part)
	}

	index := uint32(n)
	if hardened {
		index += HardenedOffset
	}
	return index, nil
}

// FormatPath renders indexes back into "m/..." notation.
func FormatPath(indexes []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range indexes {
		b.WriteString("/")
		if index >= HardenedOffset {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedOffset), 10))
			b.WriteString("'")
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(index), 10))
	}
	return b.String()
}
