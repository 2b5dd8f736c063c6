package record_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"remapper/record"
)

type code string

func TestSameKey(t *testing.T) {
	t.Parallel()

	one := 1
	var nilInt *int

	now := time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		a, b   any
		coerce bool
		want   bool
	}{
		{"equal ints", 1, 1, false, true},
		{"different ints", 1, 2, false, false},
		{"int kinds", int32(5), int64(5), false, true},
		{"signed and unsigned", int64(5), uint8(5), false, true},
		{"negative and unsigned", int64(-1), uint64(1<<64 - 1), false, false},
		{"int and whole float", 3, 3.0, false, true},
		{"int and fractional float", 3, 3.5, false, false},
		{"unsigned and float", uint(7), float32(7), false, true},
		{"pointer dereferenced", &one, 1, false, true},
		{"nil pointer never matches", nilInt, nilInt, false, false},
		{"nil never matches", nil, nil, false, false},
		{"strings", "a", "a", false, true},
		{"named string", code("x"), "x", false, true},
		{"bytes as string", []byte("abc"), "abc", false, true},
		{"number and string without coercion", 1, "1", false, false},
		{"number and string with coercion", 1, "1", true, true},
		{"float and string with coercion", 2.0, "2", true, true},
		{"number and other string with coercion", 1, "01", true, false},
		{"driver value", sql.NullInt64{Int64: 4, Valid: true}, 4, false, true},
		{"invalid driver value", sql.NullInt64{}, nil, false, false},
		{"bools", true, true, false, true},
		{"times", now, now.In(time.FixedZone("x", 3600)), false, true},
		{"uncomparable", []int{1}, []int{1}, false, false},
		{"different types", true, "true", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, record.SameKey(tt.a, tt.b, tt.coerce))
			assert.Equal(t, tt.want, record.SameKey(tt.b, tt.a, tt.coerce), "symmetric")
		})
	}
}
