package remap_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"remapper/schema"
)

type Desglose struct {
	Value1 *float64
	Value2 *float64
}

type Item struct {
	ID     int
	Parent int
	Name   string
}

func (i Item) String() string { return i.Name }

type Recibo struct {
	ID         int
	Name       string
	RelationID int
	Extra      string

	Desglose *Desglose
	Joined   *Item
	Summary  Item
	Owner    interface{ String() string }
	Items    []Item
	Refs     []*Item
}

type Node struct {
	ID       int
	ParentID *int
	Parent   *Node
}

var (
	desgloseType = reflect.TypeFor[Desglose]()
	itemType     = reflect.TypeFor[Item]()
	reciboType   = reflect.TypeFor[Recibo]()
)

// newRegistry returns a registry where Item and Desglose are declared with
// lower case keys, ready for the caller to declare Recibo.
func newRegistry(t *testing.T, recibo ...schema.Descriptor) *schema.Registry {
	t.Helper()

	reg := schema.NewRegistry()

	require.NoError(t, reg.Register(itemType,
		schema.Column{Property: "ID", Name: "id"},
		schema.Column{Property: "Parent", Name: "parent"},
		schema.Column{Property: "Name", Name: "name"},
	))
	require.NoError(t, reg.Register(desgloseType,
		schema.Column{Property: "Value1", Name: "value1"},
		schema.Column{Property: "Value2", Name: "value2"},
	))
	require.NoError(t, reg.Register(reciboType, recibo...))

	return reg
}

func ptr[T any](v T) *T { return &v }
