package record

import (
	"database/sql/driver"
	"math"
	"reflect"
	"time"

	"github.com/spf13/cast"

	"remapper/primitive"
)

// SameKey reports whether two relation key values identify the same record.
//
// Pointers are dereferenced and driver values unwrapped; nil never matches anything,
// including another nil. Numbers of any Go numeric kind compare by value and []byte
// compares as a string. A number is compared with a string only when coerce is set,
// by their textual forms.
func SameKey(a, b any, coerce bool) bool {
	a, b = keyValue(a), keyValue(b)
	if a == nil || b == nil {
		return false
	}

	na, aNum := numberOf(a)
	nb, bNum := numberOf(b)

	switch {
	case aNum && bNum:
		return na.equal(nb)
	case aNum != bNum:
		if !coerce {
			return false
		}

		sa, errA := cast.ToStringE(a)
		sb, errB := cast.ToStringE(b)

		return errA == nil && errB == nil && sa == sb
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)

	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return ra.String() == rb.String()
	case ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool:
		return ra.Bool() == rb.Bool()
	}

	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}

	if ra.Type() != rb.Type() || !ra.Comparable() {
		return false
	}

	return a == b
}

func keyValue(v any) any {
	for v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr {
			break
		}

		if rv.IsNil() {
			return nil
		}

		if _, isValuer := v.(driver.Valuer); isValuer {
			break
		}

		v = rv.Elem().Interface()
	}

	v, err := primitive.Unwrap(v)
	if err != nil {
		return nil
	}

	return v
}

type number struct {
	kind reflect.Kind // Int64, Uint64 or Float64
	i    int64
	u    uint64
	f    float64
}

func numberOf(v any) (number, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: reflect.Int64, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: reflect.Uint64, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: reflect.Float64, f: rv.Float()}, true
	default:
		return number{}, false
	}
}

func (n number) equal(o number) bool {
	if n.kind > o.kind {
		return o.equal(n)
	}

	switch {
	case n.kind == o.kind:
		return n == o
	case n.kind == reflect.Int64 && o.kind == reflect.Uint64:
		return n.i >= 0 && uint64(n.i) == o.u
	case n.kind == reflect.Int64:
		return o.f == math.Trunc(o.f) && o.f >= math.MinInt64 && o.f < math.MaxInt64 && int64(o.f) == n.i
	default: // uint64 vs float64
		return o.f == math.Trunc(o.f) && o.f >= 0 && o.f < math.MaxUint64 && uint64(o.f) == n.u
	}
}
