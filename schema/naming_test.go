package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remapper/schema"
)

func TestParseNaming(t *testing.T) {
	t.Parallel()

	for _, n := range []schema.Naming{schema.Identity, schema.LowerCamel, schema.UpperCamel, schema.SnakeCase} {
		got, err := schema.ParseNaming(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	got, err := schema.ParseNaming("")
	require.NoError(t, err)
	assert.Equal(t, schema.Identity, got)

	_, err = schema.ParseNaming("kebab")
	require.Error(t, err)

	assert.Equal(t, "Naming(9)", schema.Naming(9).String())
	assert.Equal(t, "manyToOne", schema.KindManyToOne.String())
}
