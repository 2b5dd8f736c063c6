package primitive

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"remapper/utils"
)

var (
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrOverflow              = errors.New("value overflows target type")
	ErrInvalidEnum           = errors.New("value is not valid for enum type")
)

var (
	scannerType         = reflect.TypeFor[sql.Scanner]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	validatorType       = reflect.TypeFor[interface{ IsValid() bool }]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()
)

// Unwrap reduces driver level values to plain scalars:
// driver.Valuer implementations are resolved and []byte becomes a string.
func Unwrap(raw any) (any, error) {
	if v, ok := raw.(driver.Valuer); ok {
		if rv := reflect.ValueOf(raw); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return nil, nil
		}

		val, err := v.Value()
		if err != nil {
			return nil, fmt.Errorf("failed to read driver value %T: %w", raw, err)
		}

		raw = val
	}

	if b, ok := raw.([]byte); ok {
		return string(b), nil
	}

	return raw, nil
}

// Convert returns raw coerced into a new value of type to.
func Convert(raw any, to reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	v := reflect.New(to).Elem()
	if err := Assign(v, raw, allowed); err != nil {
		return reflect.Value{}, err
	}

	return v, nil
}

// Assign stores raw into the settable dst, coercing it when the types differ.
// A nil raw value stores the zero value (nil for pointers).
//
// Resolution order:
//   - raw assignable to dst: plain assignment
//   - *dst implements sql.Scanner: Scan(raw)
//   - dst is a pointer: a new element is allocated and assigned recursively
//   - scalar kinds: conversion permitted by allowed categories
func Assign(dst reflect.Value, raw any, allowed CategoryEnum) error {
	if raw != nil && reflect.TypeOf(raw).AssignableTo(dst.Type()) {
		dst.Set(reflect.ValueOf(raw))
		return nil
	}

	raw, err := Unwrap(raw)
	if err != nil {
		return err
	}

	if reflect.PointerTo(dst.Type()).Implements(scannerType) && dst.CanAddr() {
		if err := dst.Addr().Interface().(sql.Scanner).Scan(raw); err != nil {
			return fmt.Errorf("failed to scan %T into %s: %w", raw, dst.Type(), err)
		}

		return nil
	}

	if raw == nil {
		dst.SetZero()
		return nil
	}

	if dst.Kind() == reflect.Ptr {
		elem := reflect.New(dst.Type().Elem())
		if err := Assign(elem.Elem(), raw, allowed); err != nil {
			return err
		}

		dst.Set(elem)

		return nil
	}

	if reflect.TypeOf(raw).AssignableTo(dst.Type()) {
		dst.Set(reflect.ValueOf(raw))
		return nil
	}

	return assignScalar(dst, raw, allowed)
}

func assignScalar(dst reflect.Value, raw any, allowed CategoryEnum) error {
	from := FromValue(raw)
	to := FromReflectType(dst.Type())

	if from == 0 || to == 0 {
		return fmt.Errorf("%w: %T to %s", ErrUnsupportedConversion, raw, dst.Type())
	}

	if !Allows(from, to, allowed) {
		return fmt.Errorf("%w: %s to %s is not allowed", ErrUnsupportedConversion, from, to)
	}

	switch {
	case to == KindPrimitiveEnum:
		return assignEnum(dst, raw, from)

	case to == KindTime:
		t, err := toTime(raw, from)
		if err != nil {
			return err
		}

		dst.Set(reflect.ValueOf(t))

	case to == KindDuration:
		d, err := toDuration(raw, from)
		if err != nil {
			return err
		}

		dst.SetInt(int64(d))

	case to.IsSigned():
		return setInt(dst, raw, from)

	case to.IsUnsigned():
		return setUint(dst, raw, from)

	case to.IsFloat():
		f, err := toFloat64(raw, from)
		if err != nil {
			return err
		}

		if dst.OverflowFloat(f) {
			return fmt.Errorf("%w: %v does not fit %s", ErrOverflow, raw, dst.Type())
		}

		dst.SetFloat(f)

	case to == KindBool:
		b, err := toBool(raw, from)
		if err != nil {
			return err
		}

		dst.SetBool(b)

	case to == KindString:
		s, err := toString(raw, from)
		if err != nil {
			return err
		}

		dst.SetString(s)

	default:
		return fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}

	return nil
}

func setInt(dst reflect.Value, raw any, from KindEnum) error {
	n, err := toInt64(raw, from)
	if err != nil {
		return err
	}

	lo, hi := utils.SignedBounds(dst.Type().Bits())
	if !utils.IsInRange(lo, n, hi) {
		return fmt.Errorf("%w: %d does not fit %s", ErrOverflow, n, dst.Type())
	}

	dst.SetInt(n)

	return nil
}

func setUint(dst reflect.Value, raw any, from KindEnum) error {
	u, err := toUint64(raw, from)
	if err != nil {
		return err
	}

	if !utils.IsInRange(0, u, utils.UnsignedMax(dst.Type().Bits())) {
		return fmt.Errorf("%w: %d does not fit %s", ErrOverflow, u, dst.Type())
	}

	dst.SetUint(u)

	return nil
}

func assignEnum(dst reflect.Value, raw any, from KindEnum) error {
	text, isText := textOf(raw, from)

	switch {
	case isText && reflect.PointerTo(dst.Type()).Implements(textUnmarshalerType):
		u := dst.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(text)); err != nil {
			return fmt.Errorf("%w: %q for %s: %w", ErrInvalidEnum, text, dst.Type(), err)
		}

		return nil

	case dst.Kind() == reflect.String:
		s, err := toString(raw, from)
		if err != nil {
			return err
		}

		dst.SetString(s)

	case isText:
		// integer based enum given as text: accept its decimal form only
		if _, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err != nil {
			return fmt.Errorf("%w: %q for %s", ErrInvalidEnum, text, dst.Type())
		}

		if err := assignIntKind(dst, strings.TrimSpace(text), KindString); err != nil {
			return err
		}

	default:
		if err := assignIntKind(dst, raw, from); err != nil {
			return err
		}
	}

	if v, ok := validatorOf(dst); ok && !v.IsValid() {
		return fmt.Errorf("%w: %v for %s", ErrInvalidEnum, raw, dst.Type())
	}

	return nil
}

func assignIntKind(dst reflect.Value, raw any, from KindEnum) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, raw, from)
	default:
		return setUint(dst, raw, from)
	}
}

func validatorOf(v reflect.Value) (interface{ IsValid() bool }, bool) {
	if v.Type().Implements(validatorType) {
		return v.Interface().(interface{ IsValid() bool }), true
	}

	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(validatorType) {
		return v.Addr().Interface().(interface{ IsValid() bool }), true
	}

	return nil, false
}

// textOf returns the textual payload of string and string based enum values.
func textOf(raw any, from KindEnum) (string, bool) {
	rv := reflect.ValueOf(raw)
	if (from == KindString || from == KindPrimitiveEnum) && rv.Kind() == reflect.String {
		return rv.String(), true
	}

	return "", false
}

func isSignedKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsignedKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func toInt64(raw any, from KindEnum) (int64, error) {
	rv := reflect.ValueOf(raw)

	switch {
	case from == KindTime:
		return raw.(time.Time).Unix(), nil
	case from == KindDuration:
		return int64(raw.(time.Duration)), nil
	case from == KindBool:
		if raw.(bool) {
			return 1, nil
		}

		return 0, nil
	case isSignedKind(rv.Kind()):
		return rv.Int(), nil
	case isUnsignedKind(rv.Kind()):
		if u := rv.Uint(); u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d does not fit int64", ErrOverflow, u)
		}

		return int64(rv.Uint()), nil
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v does not fit int64", ErrOverflow, f)
		}

		return int64(f), nil
	case rv.Kind() == reflect.String:
		// base 10 on purpose: zero padded codes ("040") must not read as octal
		s := strings.TrimSpace(rv.String())
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}

		f, err := cast.ToFloat64E(s)
		if err != nil || f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrUnsupportedConversion, s)
		}

		return toInt64(f, KindFloat64)
	}

	return 0, fmt.Errorf("%w: %T to integer", ErrUnsupportedConversion, raw)
}

func toUint64(raw any, from KindEnum) (uint64, error) {
	rv := reflect.ValueOf(raw)
	if isUnsignedKind(rv.Kind()) {
		return rv.Uint(), nil
	}

	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		f := rv.Float()
		if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 {
			return 0, fmt.Errorf("%w: %v does not fit uint64", ErrOverflow, f)
		}

		return uint64(f), nil
	}

	n, err := toInt64(raw, from)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOverflow, n)
	}

	return uint64(n), nil
}

func toFloat64(raw any, from KindEnum) (float64, error) {
	rv := reflect.ValueOf(raw)

	switch {
	case from == KindDuration:
		return raw.(time.Duration).Seconds(), nil
	case isSignedKind(rv.Kind()):
		return float64(rv.Int()), nil
	case isUnsignedKind(rv.Kind()):
		return float64(rv.Uint()), nil
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return rv.Float(), nil
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedConversion, err)
	}

	return f, nil
}

func toBool(raw any, from KindEnum) (bool, error) {
	if s, ok := raw.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off":
			return false, nil
		}
	}

	if from.IsInteger() {
		n, err := toInt64(raw, from)
		return n != 0, err
	}

	b, err := cast.ToBoolE(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnsupportedConversion, err)
	}

	return b, nil
}

func toString(raw any, from KindEnum) (string, error) {
	rv := reflect.ValueOf(raw)

	switch {
	case from == KindString:
		return rv.String(), nil
	case from == KindTime:
		return raw.(time.Time).Format(time.RFC3339Nano), nil
	case from == KindDuration:
		return raw.(time.Duration).String(), nil
	case from == KindPrimitiveEnum && rv.Type().Implements(stringerType):
		return raw.(fmt.Stringer).String(), nil
	case from == KindPrimitiveEnum && rv.Kind() == reflect.String:
		return rv.String(), nil
	case from == KindPrimitiveEnum && isSignedKind(rv.Kind()):
		return strconv.FormatInt(rv.Int(), 10), nil
	case from == KindPrimitiveEnum:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedConversion, err)
	}

	return s, nil
}

func toTime(raw any, from KindEnum) (time.Time, error) {
	if from.IsInteger() {
		n, err := toInt64(raw, from)
		if err != nil {
			return time.Time{}, err
		}

		return time.Unix(n, 0).UTC(), nil
	}

	t, err := cast.ToTimeE(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrUnsupportedConversion, err)
	}

	return t, nil
}

func toDuration(raw any, from KindEnum) (time.Duration, error) {
	switch {
	case from.IsFloat():
		f, err := toFloat64(raw, from)
		if err != nil {
			return 0, err
		}

		return time.Duration(f * float64(time.Second)), nil
	case from.IsInteger():
		n, err := toInt64(raw, from)
		return time.Duration(n), err
	}

	d, err := cast.ToDurationE(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedConversion, err)
	}

	return d, nil
}
