package mapping

import (
	"reflect"
	"sort"
	"strings"
)

// ResolveTypeName resolves a type name like:
// - "blog.Post" (short)
// - "remapper/examples/blog.Post" (full)
// - "Post" (name only, unambiguous).
//
// known maps every registered name ("alias.Name") to its type.
func ResolveTypeName(name string, known map[string]reflect.Type) (reflect.Type, bool) {
	if name == "" {
		return nil, false
	}

	// 1) exact match
	if t, ok := known[name]; ok {
		return t, true
	}

	lastDot := strings.LastIndex(name, ".")

	// 2) name only: must be unambiguous
	if lastDot < 0 {
		var found reflect.Type

		for _, k := range sortedKeys(known) {
			t := known[k]
			if t.Name() != name {
				continue
			}

			if found != nil && found != t {
				return nil, false
			}

			found = t
		}

		return found, found != nil
	}

	pkgStr, typeName := name[:lastDot], name[lastDot+1:]
	if pkgStr == "" || typeName == "" {
		return nil, false
	}

	// 3) full import path or a suffix of it
	for _, k := range sortedKeys(known) {
		t := known[k]
		if t.Name() != typeName {
			continue
		}

		if t.PkgPath() == pkgStr || strings.HasSuffix(t.PkgPath(), "/"+pkgStr) {
			return t, true
		}
	}

	return nil, false
}

func sortedKeys(m map[string]reflect.Type) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
