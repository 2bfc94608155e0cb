// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package environment

import (
	"errors"
	"fmt"
	"os"
)

// MaxValueLength bounds a search-path value built by PrependPath,
// counting one byte for a C string terminator. Values that would not
// fit in a 4 KiB buffer are rejected rather than truncated.
const MaxValueLength = 4096

// ListSeparator joins entries in a search-path variable: a colon on
// unix platforms.
const ListSeparator = string(os.PathListSeparator)

// ErrTooLong is returned by PrependPath when the combined value would
// exceed the length limit.
var ErrTooLong = errors.New("search path value exceeds maximum length")

// PrependPath returns entry followed by ListSeparator and existing. An
// empty existing value yields entry alone, with no trailing separator.
// The existing value is preserved verbatim.
//
// limit is the maximum length including the terminator; zero or
// negative means MaxValueLength.
func PrependPath(entry, existing string, limit int) (string, error) {
	if limit <= 0 {
		limit = MaxValueLength
	}

	value := entry
	if existing != "" {
		value = entry + ListSeparator + existing
	}

	if len(value)+1 > limit {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLong, len(value)+1, limit)
	}
	return value, nil
}
