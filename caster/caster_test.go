package caster_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remapper/caster"
	"remapper/primitive"
)

type moreThanError interface {
	error
	More()
}

func empty()                          { panic("not implemented") }
func wrong(int) (string, error, bool) { panic("not implemented") }

func full(int) (string, bool, error)          { panic("not implemented") }
func customError(int) (string, moreThanError) { panic("not implemented") }
func double(**int) string                     { panic("not implemented") }

func ExampleCaster() {
	desc, err := caster.Parse(full)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = caster.Parse(strconv.Itoa)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = caster.Parse(strconv.Atoi)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = caster.Parse(customError)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	_, err = caster.Parse(empty)
	fmt.Println(err)

	_, err = caster.Parse(wrong)
	fmt.Println(err)

	_, err = caster.Parse(double)
	fmt.Println(err)

	_, err = caster.Parse("strings.ToUpper")
	fmt.Println(err)

	// Output:
	// <nil> caster_test full int string true true
	// <nil> strconv Itoa int string false false
	// <nil> strconv Atoi string int false true
	// <nil> caster_test customError int string false true
	// provided function is not a recognizable caster
	// provided function is not a recognizable caster
	// caster function does not support double pointers
	// provided caster is not a function
}

func TestCall(t *testing.T) {
	t.Parallel()

	upper := caster.MustParse(strings.ToUpper)
	out, ok, err := upper.Call("recibo", primitive.CategoryAll)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "RECIBO", out)
	assert.Equal(t, "strings.ToUpper", upper.String())

	// raw value is coerced into the input type first
	itoa := caster.MustParse(strconv.Itoa)
	out, ok, err = itoa.Call(int64(2019), primitive.CategoryAll)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2019", out)

	_, _, err = itoa.Call("x", primitive.CategoryAll)
	require.ErrorIs(t, err, primitive.ErrUnsupportedConversion)

	atoi := caster.MustParse(strconv.Atoi)
	_, ok, err = atoi.Call("abc", primitive.CategoryAll)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	assert.False(t, ok)

	positive := caster.MustParse(func(n int) (int, bool) { return n, n > 0 })
	_, ok, err = positive.Call(-3, primitive.CategoryAll)
	require.NoError(t, err)
	assert.False(t, ok)

	boom := errors.New("boom")
	failing := caster.MustParse(func(string) (string, bool, error) { return "", true, boom })
	_, _, err = failing.Call("x", primitive.CategoryAll)
	require.ErrorIs(t, err, boom)

	assert.Panics(t, func() { caster.MustParse(42) })

	var zero caster.Caster
	_, _, err = zero.Call("x", primitive.CategoryAll)
	require.ErrorIs(t, err, caster.ErrCasterIsNotAFunction)
}
