package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remapper/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidateValidFile(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(postSchema))
	require.NoError(t, err)

	diags := Validate(f, knownTypes(), testFuncs())
	assert.False(t, diags.HasErrors(), diags.Error())
	assert.Empty(t, diags.Warnings)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	diags := Validate(nil, knownTypes(), nil)
	assert.Equal(t, []string{"schema_is_nil"}, codes(diags.Errors))
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		yaml       string
		wantCode   string
		suggestion string
	}{
		{
			name:     "unsupported version",
			yaml:     "version: \"2\"\nschemas: []",
			wantCode: "unsupported_version",
		},
		{
			name:     "unknown naming",
			yaml:     "naming: kebab\nschemas: []",
			wantCode: "unknown_naming",
		},
		{
			name:       "unknown type",
			yaml:       "schemas:\n  - type: mapping.Psot\n",
			wantCode:   "type_not_found",
			suggestion: "mapping.Post",
		},
		{
			name:     "duplicate type",
			yaml:     "schemas:\n  - type: mapping.Post\n  - type: Post\n",
			wantCode: "duplicate_type",
		},
		{
			name:     "not a struct",
			yaml:     "schemas:\n  - type: mapping.Naming\n",
			wantCode: "not_a_struct",
		},
		{
			name:       "unknown property",
			yaml:       "schemas:\n  - type: mapping.Post\n    columns: [Titel]\n",
			wantCode:   "unknown_property",
			suggestion: "Title",
		},
		{
			name:     "unexported property",
			yaml:     "schemas:\n  - type: mapping.Post\n    columns: [secret]\n",
			wantCode: "unknown_property",
		},
		{
			name:     "duplicate property",
			yaml:     "schemas:\n  - type: mapping.Post\n    columns: [ID, ID]\n",
			wantCode: "duplicate_property",
		},
		{
			name:     "missing property",
			yaml:     "schemas:\n  - type: mapping.Post\n    many_to_one:\n      - type: mapping.Author\n",
			wantCode: "missing_property",
		},
		{
			name:       "unknown transform",
			yaml:       "schemas:\n  - type: mapping.Post\n    columns:\n      - {property: Title, transform: trimm}\n",
			wantCode:   "unknown_transform",
			suggestion: "trim",
		},
		{
			name:     "unknown transform func",
			yaml:     "schemas: []\ntransforms:\n  - name: upper\n",
			wantCode: "unknown_transform_func",
		},
		{
			name:     "duplicate transform",
			yaml:     "schemas: []\ntransforms:\n  - name: trim\n  - name: trim\n",
			wantCode: "duplicate_transform",
		},
		{
			name:     "ambiguous target",
			yaml:     "schemas:\n  - type: mapping.Post\n    many_to_one:\n      - {property: Author, type: mapping.Author, alias: a}\n",
			wantCode: "ambiguous_target",
		},
		{
			name:       "unknown relation type",
			yaml:       "schemas:\n  - type: mapping.Post\n    many_to_one:\n      - {property: Author, type: mapping.Autor}\n",
			wantCode:   "type_not_found",
			suggestion: "mapping.Author",
		},
		{
			name:       "unknown own key",
			yaml:       "schemas:\n  - type: mapping.Post\n    one_to_many:\n      - {property: Comments, own_key: Idd, inverse_key: post_id}\n",
			wantCode:   "unknown_own_key",
			suggestion: "ID",
		},
		{
			name:     "invalid prefix",
			yaml:     "schemas:\n  - type: mapping.Post\n    many_to_one:\n      - {property: Author, prefix: \"a..b\"}\n",
			wantCode: "invalid_prefix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			diags := Validate(f, knownTypes(), testFuncs())
			require.True(t, diags.HasErrors())
			assert.Contains(t, codes(diags.Errors), tt.wantCode)

			if tt.suggestion != "" {
				for _, d := range diags.Errors {
					if d.Code == tt.wantCode {
						assert.Equal(t, tt.suggestion, d.Suggestion)
					}
				}
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(`
schemas:
  - type: mapping.Post
    many_to_one:
      - property: Author
        own_key: AuthorID
        inverse_key: author_id
    one_to_many:
      - property: Comments
        own_key: ID
        prefix: c
`))
	require.NoError(t, err)

	diags := Validate(f, knownTypes(), testFuncs())
	require.False(t, diags.HasErrors(), diags.Error())
	assert.ElementsMatch(t,
		[]string{"half_joined", "ignored_inverse_key", "never_expands", "ignored_key"},
		codes(diags.Warnings))
}

func TestValidatePromotedFields(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte("schemas:\n  - type: mapping.Note\n    columns: [ID, CreatedBy]\n"))
	require.NoError(t, err)

	diags := Validate(f, knownTypes(), nil)
	assert.False(t, diags.HasErrors(), diags.Error())

	f, err = Parse([]byte("schemas:\n  - type: mapping.Note\n    columns: [Stamp]\n"))
	require.NoError(t, err)

	diags = Validate(f, knownTypes(), nil)
	assert.Equal(t, []string{"unknown_property"}, codes(diags.Errors), "embedded struct itself is not a property")
}
