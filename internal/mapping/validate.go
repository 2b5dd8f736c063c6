package mapping

import (
	"fmt"
	"reflect"
	"slices"

	"remapper/internal/diagnostic"
	"remapper/internal/match"
)

// Validate checks a schema file against the known target types and transform
// functions. It is a structural check: field shapes are verified when the
// declarations are registered.
func Validate(f *File, known map[string]reflect.Type, funcs *TransformRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported schema version %q", f.Version), "", "")
	}

	if !IsValidNaming(f.Naming) {
		res.AddError("unknown_naming", fmt.Sprintf("unknown naming %q", f.Naming), "", "")
	}

	transforms := validateTransforms(res, f, funcs)

	seenTypes := map[reflect.Type]string{}

	for i := range f.Schemas {
		ts := &f.Schemas[i]

		t, ok := ResolveTypeName(ts.Type, known)
		if !ok {
			addUnknown(res, "type_not_found", fmt.Sprintf("type %q not found", ts.Type), ts.Type, "", ts.Type, sortedKeys(known))
			continue
		}

		if prev, dup := seenTypes[t]; dup {
			res.AddError("duplicate_type", fmt.Sprintf("type is already declared as %q", prev), ts.Type, "")
			continue
		}

		seenTypes[t] = ts.Type

		if t.Kind() != reflect.Struct {
			res.AddError("not_a_struct", fmt.Sprintf("type %s is not a struct", t), ts.Type, "")
			continue
		}

		if !IsValidNaming(ts.Naming) {
			res.AddError("unknown_naming", fmt.Sprintf("unknown naming %q", ts.Naming), ts.Type, "")
		}

		validateTypeSchema(res, ts, t, known, transforms)
	}

	return res
}

func validateTransforms(res *diagnostic.Diagnostics, f *File, funcs *TransformRegistry) map[string]struct{} {
	names := map[string]struct{}{}
	for _, n := range funcs.Names() {
		names[n] = struct{}{}
	}

	seen := map[string]struct{}{}

	for _, def := range f.Transforms {
		if def.Name == "" {
			res.AddError("transform_without_name", "transform has no name", "", "")
			continue
		}

		if _, ok := seen[def.Name]; ok {
			res.AddError("duplicate_transform", fmt.Sprintf("duplicate transform %q", def.Name), "", def.Name)
			continue
		}

		seen[def.Name] = struct{}{}

		if !funcs.Has(def.Func) {
			addUnknown(res, "unknown_transform_func",
				fmt.Sprintf("transform %q refers to unregistered function %q", def.Name, def.Func),
				"", def.Name, def.Func, funcs.Names())

			continue
		}

		names[def.Name] = struct{}{}
	}

	return names
}

func validateTypeSchema(
	res *diagnostic.Diagnostics,
	ts *TypeSchema,
	t reflect.Type,
	known map[string]reflect.Type,
	transforms map[string]struct{},
) {
	fields := exportedFields(t)
	seen := map[string]struct{}{}

	checkProperty := func(property string) bool {
		if property == "" {
			res.AddError("missing_property", "declaration has no property", ts.Type, "")
			return false
		}

		if _, dup := seen[property]; dup {
			res.AddError("duplicate_property", "property is declared more than once", ts.Type, property)
			return false
		}

		seen[property] = struct{}{}

		if !slices.Contains(fields, property) {
			addUnknown(res, "unknown_property", "no such exported field", ts.Type, property, property, fields)
			return false
		}

		return true
	}

	checkOwnKey := func(r Relation) {
		if r.OwnKey != "" && !slices.Contains(fields, r.OwnKey) {
			addUnknown(res, "unknown_own_key", fmt.Sprintf("own_key %q is not an exported field", r.OwnKey),
				ts.Type, r.Property, r.OwnKey, fields)
		}
	}

	checkTarget := func(r Relation) {
		if r.Type != "" && r.Alias != "" {
			res.AddError("ambiguous_target", "type and alias are mutually exclusive", ts.Type, r.Property)
		}

		if r.Type == "" {
			return
		}

		if _, ok := ResolveTypeName(r.Type, known); !ok {
			addUnknown(res, "type_not_found", fmt.Sprintf("relation type %q not found", r.Type),
				ts.Type, r.Property, r.Type, sortedKeys(known))
		}
	}

	for _, c := range ts.Columns {
		if !checkProperty(c.Property) {
			continue
		}

		if c.Transform == "" {
			continue
		}

		if _, ok := transforms[c.Transform]; !ok {
			names := make([]string, 0, len(transforms))
			for n := range transforms {
				names = append(names, n)
			}

			addUnknown(res, "unknown_transform", fmt.Sprintf("transform %q is not defined", c.Transform),
				ts.Type, c.Property, c.Transform, names)
		}
	}

	for _, r := range ts.ManyToOne {
		if !checkProperty(r.Property) {
			continue
		}

		checkTarget(r)
		checkOwnKey(r)

		if (r.OwnKey == "") != (r.MatchKey == "") {
			res.AddWarning("half_joined",
				"own_key and match_key are needed together; the relation is always embedded", ts.Type, r.Property)
		}

		if r.InverseKey != "" {
			res.AddWarning("ignored_inverse_key", "inverse_key has no effect on many_to_one", ts.Type, r.Property)
		}

		if r.Prefix != "" {
			if _, err := ParsePrefix(r.Prefix); err != nil {
				res.AddError("invalid_prefix", err.Error(), ts.Type, r.Property)
			}
		}
	}

	for _, r := range ts.OneToMany {
		if !checkProperty(r.Property) {
			continue
		}

		checkTarget(r)
		checkOwnKey(r)

		if r.OwnKey == "" || r.InverseKey == "" {
			res.AddWarning("never_expands",
				"one_to_many needs own_key and inverse_key; the relation never expands", ts.Type, r.Property)
		}

		if r.MatchKey != "" || r.Prefix != "" {
			res.AddWarning("ignored_key", "match_key and prefix have no effect on one_to_many", ts.Type, r.Property)
		}
	}
}

// addUnknown records an error about an unknown identifier, suggesting the closest candidate.
func addUnknown(res *diagnostic.Diagnostics, code, message, typ, property, name string, candidates []string) {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     code,
		Message:  message,
		Type:     typ,
		Property: property,
	}

	if s, ok := match.Suggest(name, candidates); ok {
		d.Suggestion = s
	}

	res.Add(d)
}

// exportedFields lists the exported fields of t, promoted ones included.
func exportedFields(t reflect.Type) []string {
	out := make([]string, 0, t.NumField())

	for _, f := range reflect.VisibleFields(t) {
		if f.IsExported() && !f.Anonymous {
			out = append(out, f.Name)
		}
	}

	return out
}
