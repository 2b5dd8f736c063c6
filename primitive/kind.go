package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the scalar values found in raw records and the scalar
// fields they are assigned to. The zero value means "not a scalar".
type KindEnum int

const (
	_ KindEnum = iota

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named integer or string type

	// KindTotal bounds loops over every kind, the invalid zero kind included.
	KindTotal = int(iota)
)

type kindClass uint8

const (
	classSigned kindClass = 1 << iota
	classUnsigned
	classFloat
)

var kindClasses = [KindTotal]kindClass{
	KindInt:     classSigned,
	KindInt8:    classSigned,
	KindInt16:   classSigned,
	KindInt32:   classSigned,
	KindInt64:   classSigned,
	KindUint:    classUnsigned,
	KindUint8:   classUnsigned,
	KindUint16:  classUnsigned,
	KindUint32:  classUnsigned,
	KindUint64:  classUnsigned,
	KindFloat32: classFloat,
	KindFloat64: classFloat,
}

func (k KindEnum) class() kindClass {
	if k <= 0 || int(k) >= KindTotal {
		return 0
	}

	return kindClasses[k]
}

// IsNumber reports whether k is an integer or floating point kind.
func (k KindEnum) IsNumber() bool { return k.class() != 0 }

func (k KindEnum) IsInteger() bool { return k.class()&(classSigned|classUnsigned) != 0 }

func (k KindEnum) IsFloat() bool { return k.class() == classFloat }

func (k KindEnum) IsSigned() bool { return k.class() == classSigned }

func (k KindEnum) IsUnsigned() bool { return k.class() == classUnsigned }

// exactKinds maps the unnamed scalar types, plus time.Time and time.Duration,
// to their kind. Any other named integer or string type is an enum.
var exactKinds = map[reflect.Type]KindEnum{
	reflect.TypeFor[int]():           KindInt,
	reflect.TypeFor[int8]():          KindInt8,
	reflect.TypeFor[int16]():         KindInt16,
	reflect.TypeFor[int32]():         KindInt32,
	reflect.TypeFor[int64]():         KindInt64,
	reflect.TypeFor[uint]():          KindUint,
	reflect.TypeFor[uint8]():         KindUint8,
	reflect.TypeFor[uint16]():        KindUint16,
	reflect.TypeFor[uint32]():        KindUint32,
	reflect.TypeFor[uint64]():        KindUint64,
	reflect.TypeFor[float32]():       KindFloat32,
	reflect.TypeFor[float64]():       KindFloat64,
	reflect.TypeFor[bool]():          KindBool,
	reflect.TypeFor[string]():        KindString,
	reflect.TypeFor[time.Time]():     KindTime,
	reflect.TypeFor[time.Duration](): KindDuration,
}

// FromValue classifies the dynamic type of a raw record value.
func FromValue(v any) KindEnum {
	return FromReflectType(reflect.TypeOf(v))
}

// FromReflectType classifies rtype, returning the zero KindEnum for non-scalar types.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if k, ok := exactKinds[rtype]; ok {
		return k
	}

	switch rtype.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return KindPrimitiveEnum
	default:
		return 0
	}
}
