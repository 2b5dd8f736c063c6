package mapping

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ParsePrefix splits a dotted embedded prefix ("Desglose", "order.customer")
// into its segments. Segments must be non-empty and free of spaces.
func ParsePrefix(prefix string) ([]string, error) {
	if prefix == "" {
		return nil, errors.New("empty prefix")
	}

	segments := strings.Split(prefix, ".")
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("invalid prefix %q: empty segment", prefix)
		}

		if strings.ContainsFunc(s, unicode.IsSpace) {
			return nil, fmt.Errorf("invalid prefix %q: segment %q contains spaces", prefix, s)
		}
	}

	return segments, nil
}

// IsValidIdent checks if a string is a valid Go identifier.
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}
