// Package ident compares entity identifiers that different gateway query
// shapes format inconsistently (hyphenated vs. bare UUID strings, mixed
// case).
package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize strips separator characters and case-folds an identifier so
// that formatting differences do not break equality checks. A missing
// identifier normalizes to the empty string, so two missing identifiers
// compare equal; callers that care must check IsZero first.
func Normalize(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		switch r {
		case '-', '_', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// Equal reports whether two identifiers are the same after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// IsZero reports whether an identifier is empty after normalization.
func IsZero(id string) bool {
	return Normalize(id) == ""
}

// IsUUID reports whether the identifier parses as a UUID in any of the
// formats the gateway emits.
func IsUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
