package schema_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remapper/schema"
)

func TestValidateClean(t *testing.T) {
	t.Parallel()

	reg := schema.NewRegistry()
	reg.MustRegister(reflect.TypeFor[Desglose](), schema.Column{Property: "Value1"})
	reg.MustRegister(reciboType,
		schema.Column{Property: "ID"},
		schema.ManyToOne{Property: "Desglose"},
	)

	require.NoError(t, reg.Validate())
}

func TestValidateWarnings(t *testing.T) {
	t.Parallel()

	var logs strings.Builder

	reg := schema.NewRegistry(schema.WithLogger(zerolog.New(&logs)))
	reg.MustRegister(reciboType,
		schema.ManyToOne{Property: "Desglose", OwnKey: "RelationID"},
		schema.OneToMany{Property: "Items", OwnKey: "ID"},
		schema.ManyToOne{Property: "Owner", Target: schema.ByAlias("owners")},
	)

	require.NoError(t, reg.Validate())

	out := logs.String()
	assert.Contains(t, out, `"code":"half_joined"`)
	assert.Contains(t, out, `"code":"never_expands"`)
	assert.Contains(t, out, `"code":"unregistered_target"`)
	assert.NotContains(t, out, "alias_target", "infos are not logged")
}

func TestValidateCycles(t *testing.T) {
	t.Parallel()

	t.Run("embedded self reference never terminates", func(t *testing.T) {
		t.Parallel()

		reg := schema.NewRegistry()
		reg.MustRegister(reflect.TypeFor[Node](),
			schema.Column{Property: "ID"},
			schema.ManyToOne{Property: "Parent"},
		)

		err := reg.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "relation cycle schema_test.Node -> schema_test.Node never terminates")
	})

	t.Run("embedded mutual reference never terminates", func(t *testing.T) {
		t.Parallel()

		reg := schema.NewRegistry()
		reg.MustRegister(reflect.TypeFor[Left](), schema.ManyToOne{Property: "Right"})
		reg.MustRegister(reflect.TypeFor[Right](), schema.ManyToOne{Property: "Left"})

		err := reg.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "schema_test.Left -> schema_test.Right -> schema_test.Left")
	})

	t.Run("joined cycle is a warning", func(t *testing.T) {
		t.Parallel()

		var logs strings.Builder

		reg := schema.NewRegistry(schema.WithLogger(zerolog.New(&logs)))
		reg.MustRegister(reflect.TypeFor[Node](),
			schema.Column{Property: "ID"},
			schema.ManyToOne{Property: "Parent", OwnKey: "ParentID", MatchKey: "ID"},
			schema.OneToMany{Property: "Children", OwnKey: "ID", InverseKey: "ParentID"},
		)

		require.NoError(t, reg.Validate())
		assert.Contains(t, logs.String(), "terminates only when joined records run out")
	})
}
