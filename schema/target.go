package schema

import (
	"reflect"

	"remapper/internal/common"
)

// Target identifies the related side of a relation, either by type identity
// or by a string alias matched against the aliases of the supplied sources.
// The zero Target means "infer from the property type".
type Target struct {
	typ   reflect.Type
	alias string
}

// ByType targets the source whose records map into t.
func ByType(t reflect.Type) Target {
	return Target{typ: t}
}

// TypeOf targets the source whose records map into T.
func TypeOf[T any]() Target {
	return ByType(reflect.TypeFor[T]())
}

// ByAlias targets the source supplied under alias.
func ByAlias(alias string) Target {
	return Target{alias: alias}
}

func (t Target) Type() reflect.Type { return t.typ }
func (t Target) Alias() string      { return t.alias }
func (t Target) IsAlias() bool      { return t.alias != "" }
func (t Target) IsZero() bool       { return t.typ == nil && t.alias == "" }

func (t Target) String() string {
	switch {
	case t.alias != "":
		return "alias:" + t.alias
	case t.typ != nil:
		return common.TypeName(t.typ)
	default:
		return "<inferred>"
	}
}
