// Package record models raw, flat input records and resolves keys against them.
package record

import (
	"strings"

	"remapper/internal/match"
)

// Record is a flat bag of scalar values addressed by string keys.
// Nested values are expressed with dotted keys ("relation.field").
type Record map[string]any

// MatchMode selects how a queried key is compared with the keys of a record.
type MatchMode int

const (
	MatchExact      MatchMode = iota // byte equal keys
	MatchFold                        // case-insensitive keys
	MatchNormalized                  // case, "_", "-" and " " ignored within each dotted segment
)

func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchFold:
		return "fold"
	case MatchNormalized:
		return "normalized"
	default:
		return "unknown"
	}
}

// Join qualifies key with prefix using the dotted key convention.
func Join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

// Lookup resolves key against the record.
//
// The second result distinguishes an absent key from a present key holding nil.
// Loose modes try the exact key first; when several record keys match loosely,
// the lexicographically smallest one wins so results do not depend on map order.
// The returned value is always the one stored under the record's own key.
func (r Record) Lookup(key string, mode MatchMode) (any, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}

	if mode == MatchExact {
		return nil, false
	}

	same := strings.EqualFold
	if mode == MatchNormalized {
		want := match.NormalizeKey(key)
		same = func(have, _ string) bool { return match.NormalizeKey(have) == want }
	}

	var (
		found string
		ok    bool
	)

	for k := range r {
		if !same(k, key) {
			continue
		}

		if !ok || k < found {
			found, ok = k, true
		}
	}

	if !ok {
		return nil, false
	}

	return r[found], true
}
