package schema

import (
	"reflect"

	"remapper/primitive"
)

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum classifies a property type by what it can hold.
type ShapeEnum int

const (
	ShapeUnknown   ShapeEnum = iota
	ShapeScalar              // primitive kinds, pointers to them included
	ShapeStruct              // struct value
	ShapeStructPtr           // pointer to struct
	ShapeInterface           // interface, holds whatever the relation target maps into
	ShapeSlice               // slice of struct, pointer to struct or interface
	ShapeOther               // anything else, usable as a plain column only

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// Classify returns the shape of t.
func Classify(t reflect.Type) ShapeEnum {
	if t == nil {
		return ShapeUnknown
	}

	if primitive.FromReflectType(base(t)) != 0 {
		return ShapeScalar
	}

	switch t.Kind() {
	case reflect.Struct:
		return ShapeStruct
	case reflect.Interface:
		return ShapeInterface
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return ShapeStructPtr
		}
	case reflect.Slice:
		switch Classify(t.Elem()) {
		case ShapeStruct, ShapeStructPtr, ShapeInterface:
			return ShapeSlice
		}
	}

	return ShapeOther
}

// IsOne reports a shape able to hold a many-to-one relation.
func (s ShapeEnum) IsOne() bool {
	return s == ShapeStruct || s == ShapeStructPtr || s == ShapeInterface
}

// relatedType returns the struct type a relation property holds, or nil for interfaces.
func relatedType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}

	t = base(t)
	if t.Kind() != reflect.Struct {
		return nil
	}

	return t
}

func base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

// accepts reports whether a value of type concrete (or a pointer to it) can be
// stored into a relation slot of type slot.
func accepts(slot, concrete reflect.Type) bool {
	switch slot.Kind() {
	case reflect.Interface:
		return concrete.Implements(slot) || reflect.PointerTo(concrete).Implements(slot)
	case reflect.Ptr:
		return slot.Elem() == concrete
	default:
		return slot == concrete
	}
}
