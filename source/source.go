// Package source models the record sets supplied per call for joined
// relations, and resolves them by type identity or alias.
package source

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"

	"remapper/internal/common"
	"remapper/record"
	"remapper/schema"
)

// Source is a record set whose records map into Type. Alias optionally names it
// for relations declared against an alias instead of a type.
type Source struct {
	Alias   string
	Type    reflect.Type
	Records []record.Record
}

// Of returns a source of records mapping into T.
func Of[T any](records ...record.Record) Source {
	return Source{Type: reflect.TypeFor[T](), Records: records}
}

// Aliased returns a source of records mapping into T, addressable by alias.
func Aliased[T any](alias string, records ...record.Record) Source {
	return Source{Alias: alias, Type: reflect.TypeFor[T](), Records: records}
}

func (s Source) String() string {
	name := common.TypeName(s.Type)
	if s.Alias != "" {
		name = s.Alias + "(" + name + ")"
	}

	return fmt.Sprintf("%s[%d]", name, len(s.Records))
}

// Catalog is the ordered list of sources of one call.
type Catalog []Source

// Resolve finds the source for target: by alias equality for alias targets,
// by type identity otherwise, ignoring pointer indirection. The first match wins.
func (c Catalog) Resolve(target schema.Target) (Source, bool) {
	if target.IsAlias() {
		return lo.Find(c, func(s Source) bool { return s.Alias == target.Alias() })
	}

	if target.Type() == nil {
		return Source{}, false
	}

	want := base(target.Type())

	return lo.Find(c, func(s Source) bool { return base(s.Type) == want })
}

// Duplicates returns the targets supplied by more than one source, which
// resolve to the first of them only.
func (c Catalog) Duplicates() []string {
	aliases := lo.FindDuplicates(lo.FilterMap(c, func(s Source, _ int) (string, bool) {
		return s.Alias, s.Alias != ""
	}))

	types := lo.FindDuplicates(lo.FilterMap(c, func(s Source, _ int) (reflect.Type, bool) {
		return base(s.Type), s.Type != nil
	}))

	out := lo.Map(aliases, func(a string, _ int) string { return "alias:" + a })

	return append(out, lo.Map(types, func(t reflect.Type, _ int) string { return common.TypeName(t) })...)
}

func base(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
