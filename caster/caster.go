// Package caster wraps user supplied conversion functions used as column
// transforms.
package caster

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"remapper/primitive"
	"remapper/utils"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
)

var errorType = reflect.TypeFor[error]()

type Caster struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// Parse inspects the provided function and returns a Caster if it is a valid caster function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
func Parse(fn any) (Caster, error) {
	if fn == nil {
		return Caster{}, ErrCasterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Caster{}, ErrCasterIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return Caster{}, ErrIsNotACaster
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return Caster{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Caster{}, ErrDoublePointer
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	caster := Caster{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: utils.Second(path.Split(alias)),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Caster{}, ErrIsNotACaster

	case 1:
		return caster, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Caster{}, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			caster.HasBool = true
		case isError(last):
			caster.HasErr = true
		}
		return caster, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Caster{}, ErrIsNotACaster
		}

		caster.HasBool = true
		caster.HasErr = true
		return caster, nil
	}
}

// MustParse is like Parse but panics on error.
func MustParse(fn any) Caster {
	c, err := Parse(fn)
	if err != nil {
		panic(fmt.Sprintf("caster %T: %v", fn, err))
	}

	return c
}

// String returns the qualified function name.
func (c Caster) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}

// Call coerces raw into the caster input type and invokes the function.
// A false boolean result reports that the value was not produced.
func (c Caster) Call(raw any, allowed primitive.CategoryEnum) (any, bool, error) {
	if !c.fn.IsValid() {
		return nil, false, ErrCasterIsNotAFunction
	}

	arg, err := primitive.Convert(raw, c.Src, allowed)
	if err != nil {
		return nil, false, fmt.Errorf("transform %s input: %w", c, err)
	}

	out := c.fn.Call([]reflect.Value{arg})
	ok := true

	if c.HasBool {
		ok = out[1].Bool()
	}

	if c.HasErr {
		if e := out[len(out)-1]; !e.IsNil() {
			return nil, false, fmt.Errorf("transform %s: %w", c, e.Interface().(error))
		}
	}

	if !ok {
		return nil, false, nil
	}

	return out[0].Interface(), true, nil
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(errorType)
}
