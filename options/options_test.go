package options_test

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remapper/options"
	"remapper/primitive"
	"remapper/record"
	"remapper/schema"
	"remapper/source"
)

type Item struct{ ID int }

func ExampleSetDefaults() {
	defer options.ResetDefaults()

	options.SetDefaults(options.WithIgnoreCase(true), options.WithWorkers(4))

	o := options.New(options.WithWorkers(2))
	fmt.Println(o.IgnoreCase, o.Workers, o.MaxDepth, o.MatchMode())
	// Output:
	// true 2 64 fold
}

func TestDefaults(t *testing.T) {
	o := options.Defaults()

	assert.False(t, o.IgnoreCase)
	assert.Empty(t, o.Sources)
	assert.Equal(t, options.FoundNonNull, o.Found)
	assert.Equal(t, primitive.CategoryAll, o.Conversions)
	assert.Equal(t, options.DefaultMaxDepth, o.MaxDepth)
	assert.Equal(t, 1, o.Workers)
	assert.Same(t, schema.Default, o.Registry)
	assert.Equal(t, record.MatchExact, o.MatchMode())
}

func TestShallowMerge(t *testing.T) {
	defer options.ResetDefaults()

	items := source.Of[Item](record.Record{"ID": 1})
	more := source.Aliased[Item]("more")

	options.SetDefaults(options.WithSources(items), options.WithCoerceKeys(true))

	t.Run("untouched settings come from defaults", func(t *testing.T) {
		o := options.New(options.WithIgnoreCase(true))

		assert.True(t, o.IgnoreCase)
		assert.True(t, o.CoerceKeys)
		assert.Equal(t, source.Catalog{items}, o.Sources)
	})

	t.Run("sources are replaced", func(t *testing.T) {
		o := options.New(options.WithSources(more))
		assert.Equal(t, source.Catalog{more}, o.Sources)
	})

	t.Run("sources are appended explicitly", func(t *testing.T) {
		o := options.New(options.AddSources(more))
		assert.Equal(t, source.Catalog{items, more}, o.Sources)
		assert.Len(t, options.Defaults().Sources, 1, "defaults are not modified")
	})

	t.Run("invalid numbers fall back", func(t *testing.T) {
		o := options.New(options.WithMaxDepth(-1), options.WithWorkers(0), options.WithRegistry(nil), nil)

		assert.Equal(t, options.DefaultMaxDepth, o.MaxDepth)
		assert.Equal(t, 1, o.Workers)
		assert.Same(t, schema.Default, o.Registry)
	})

	options.ResetDefaults()
	assert.Empty(t, options.Defaults().Sources)
	assert.False(t, options.Defaults().CoerceKeys)
}

func TestMatchMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, record.MatchFold, options.Options{IgnoreCase: true}.MatchMode())
	assert.Equal(t, record.MatchNormalized, options.Options{NormalizeKeys: true}.MatchMode())
	assert.Equal(t, record.MatchNormalized, options.Options{IgnoreCase: true, NormalizeKeys: true}.MatchMode())
}

func TestFoundRule(t *testing.T) {
	t.Parallel()

	var nilPtr *int

	zero := 0

	tests := []struct {
		name    string
		value   any
		present bool
		nonNull bool
		any     bool
		truthy  bool
	}{
		{"absent", "x", false, false, false, false},
		{"nil", nil, true, false, true, false},
		{"nil pointer", nilPtr, true, false, true, false},
		{"invalid null string", sql.NullString{}, true, false, true, false},
		{"zero", 0, true, true, true, false},
		{"zero float", 0.0, true, true, true, false},
		{"pointer to zero", &zero, true, true, true, false},
		{"empty string", "", true, true, true, false},
		{"empty bytes", []byte{}, true, true, true, false},
		{"false", false, true, true, true, false},
		{"number", 7, true, true, true, true},
		{"text", "a", true, true, true, true},
		{"valid null string", sql.NullString{String: "a", Valid: true}, true, true, true, true},
		{"struct", struct{}{}, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.nonNull, options.FoundNonNull.IsFound(tt.value, tt.present), "non_null")
			assert.Equal(t, tt.any, options.FoundPresent.IsFound(tt.value, tt.present), "present")
			assert.Equal(t, tt.truthy, options.FoundTruthy.IsFound(tt.value, tt.present), "truthy")
		})
	}
}

func TestParseFoundRule(t *testing.T) {
	t.Parallel()

	for _, r := range []options.FoundRule{options.FoundNonNull, options.FoundPresent, options.FoundTruthy} {
		got, err := options.ParseFoundRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := options.ParseFoundRule("nonNull")
	require.NoError(t, err)
	assert.Equal(t, options.FoundNonNull, got)

	_, err = options.ParseFoundRule("sometimes")
	require.ErrorIs(t, err, options.ErrUnknownFoundRule)
	assert.Equal(t, "FoundRule(9)", options.FoundRule(9).String())
}

func TestParseCategories(t *testing.T) {
	t.Parallel()

	got, err := options.ParseCategories("safe_number", "textNumber", " ", "enum-string")
	require.NoError(t, err)
	assert.Equal(t, primitive.CategorySafeNumber|primitive.CategoryTextNumber|primitive.CategoryEnumString, got)
	assert.Equal(t, []string{"enum_string", "safe_number", "text_number"}, options.FormatCategories(got))

	got, err = options.ParseCategories()
	require.NoError(t, err)
	assert.Equal(t, primitive.CategoryNone, got)
	assert.Equal(t, []string{"none"}, options.FormatCategories(got))

	got, err = options.ParseCategories("all")
	require.NoError(t, err)
	assert.Equal(t, []string{"all"}, options.FormatCategories(got))

	_, err = options.ParseCategories("datetim")
	require.ErrorIs(t, err, options.ErrUnknownCategory)
	assert.Contains(t, err.Error(), `did you mean "datetime"`)

	assert.Contains(t, options.CategoryNames(), "numeric_enum")
}
