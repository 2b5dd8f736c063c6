package options

import (
	"errors"
	"fmt"
	"reflect"

	"remapper/internal/match"
	"remapper/primitive"
)

var ErrUnknownFoundRule = errors.New("unknown found rule")

// FoundRule decides whether a resolved column value counts as found for the
// collapse rule. Relations count as found when they produce a value, no matter
// the rule.
type FoundRule int

const (
	FoundNonNull FoundRule = iota // key present and value not null; 0 and "" are found
	FoundPresent                  // key present, even with a null value
	FoundTruthy                   // null, false, 0 and "" are not found
)

func (r FoundRule) String() string {
	switch r {
	case FoundNonNull:
		return "non_null"
	case FoundPresent:
		return "present"
	case FoundTruthy:
		return "truthy"
	default:
		return fmt.Sprintf("FoundRule(%d)", int(r))
	}
}

// ParseFoundRule accepts the names printed by FoundRule.String, ignoring case
// and separators.
func ParseFoundRule(s string) (FoundRule, error) {
	want := match.NormalizeIdent(s)
	for _, r := range []FoundRule{FoundNonNull, FoundPresent, FoundTruthy} {
		if match.NormalizeIdent(r.String()) == want {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFoundRule, s)
}

// IsFound applies the rule to a looked up value; present reports whether the
// key existed in the record at all.
func (r FoundRule) IsFound(value any, present bool) bool {
	if !present {
		return false
	}

	switch r {
	case FoundPresent:
		return true
	case FoundTruthy:
		return isTruthy(value)
	default:
		return !IsNull(value)
	}
}

// IsNull reports whether a raw value stands for null: nil itself, a nil
// pointer, or a driver.Valuer producing nil (sql.NullString{} and friends).
func IsNull(value any) bool {
	value, err := primitive.Unwrap(value)
	if err != nil {
		return false
	}

	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func isTruthy(value any) bool {
	if IsNull(value) {
		return false
	}

	value, _ = primitive.Unwrap(value)
	rv := reflect.Indirect(reflect.ValueOf(value))

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return !rv.IsZero()
	default:
		return true
	}
}
