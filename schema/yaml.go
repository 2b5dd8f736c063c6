package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"remapper/caster"
	"remapper/internal/common"
	"remapper/internal/mapping"
)

// LoadYAML declares the schemas of a YAML schema file. Types must already be
// known to the registry, through Register, RegisterTags or Known.
func (r *Registry) LoadYAML(data []byte) error {
	f, err := mapping.Parse(data)
	if err != nil {
		return err
	}

	return r.load(f)
}

// LoadFile is like LoadYAML but reads the schema file at path.
func (r *Registry) LoadFile(path string) error {
	f, err := mapping.LoadFile(path)
	if err != nil {
		return err
	}

	return r.load(f)
}

func (r *Registry) load(f *mapping.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return ErrFrozen
	}

	diags := mapping.Validate(f, r.names, r.funcs)
	for _, w := range diags.Warnings {
		r.logger.Warn().Str("code", w.Code).Str("type", w.Type).Str("property", w.Property).Msg(w.Message)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, diags.Error())
	}

	funcs, errs := mapping.BuildRegistry(f, r.funcs)
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSchema, errors.Join(errs...))
	}

	r.funcs = funcs

	for i := range f.Schemas {
		ts := &f.Schemas[i]
		t, _ := mapping.ResolveTypeName(ts.Type, r.names)

		naming := r.naming
		if ts.Naming != "" {
			naming, _ = ParseNaming(ts.Naming)
		}

		if err := r.registerLocked(t, naming, r.descriptorsOf(ts)); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *Registry) descriptorsOf(ts *mapping.TypeSchema) []Descriptor {
	descs := make([]Descriptor, 0, len(ts.Properties()))

	for _, c := range ts.Columns {
		col := Column{Property: c.Property, Name: c.Name}
		if c.Transform != "" {
			col.Transform = c.Transform
		}

		descs = append(descs, col)
	}

	for _, rel := range ts.ManyToOne {
		descs = append(descs, ManyToOne{
			Property: rel.Property,
			Target:   r.targetOf(rel),
			OwnKey:   rel.OwnKey,
			MatchKey: rel.MatchKey,
			Prefix:   rel.Prefix,
		})
	}

	for _, rel := range ts.OneToMany {
		descs = append(descs, OneToMany{
			Property:   rel.Property,
			Target:     r.targetOf(rel),
			OwnKey:     rel.OwnKey,
			InverseKey: rel.InverseKey,
		})
	}

	return descs
}

func (r *Registry) targetOf(rel mapping.Relation) Target {
	switch {
	case rel.Alias != "":
		return ByAlias(rel.Alias)
	case rel.Type != "":
		t, _ := mapping.ResolveTypeName(rel.Type, r.names)
		return ByType(t)
	default:
		return Target{}
	}
}

// Export renders every registered schema as a YAML schema file.
// Derived keys and prefixes are written out explicitly, so the output loads
// back to the same schemas whatever naming the loading registry uses.
// Named transforms are bound to the qualified name of their function.
func (r *Registry) Export() ([]byte, error) {
	f := &mapping.File{Version: "1", Naming: mapping.NamingIdentity}

	used := map[string]caster.Caster{}

	for _, t := range r.Types() {
		s := r.Lookup(t)
		f.Schemas = append(f.Schemas, exportSchema(s))

		for _, c := range s.Columns {
			if c.cast != nil && c.transformName != c.cast.String() {
				used[c.transformName] = *c.cast
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(used)) {
		f.Transforms = append(f.Transforms, mapping.TransformDef{Name: name, Func: used[name].String()})
	}

	return mapping.Marshal(f)
}

func exportSchema(s *TargetSchema) mapping.TypeSchema {
	ts := mapping.TypeSchema{Type: common.TypeName(s.Type)}

	for _, c := range s.Columns {
		mc := mapping.Column{Property: c.Property, Transform: c.transformName}
		if c.key != c.Property {
			mc.Name = c.key
		}

		ts.Columns = append(ts.Columns, mc)
	}

	for _, m := range s.ManyToOne {
		rel := exportTarget(m.Property, m.Target)
		rel.OwnKey, rel.MatchKey = m.OwnKey, m.MatchKey

		if m.prefix != m.Property {
			rel.Prefix = m.prefix
		}

		ts.ManyToOne = append(ts.ManyToOne, rel)
	}

	for _, o := range s.OneToMany {
		rel := exportTarget(o.Property, o.Target)
		rel.OwnKey, rel.InverseKey = o.OwnKey, o.InverseKey

		ts.OneToMany = append(ts.OneToMany, rel)
	}

	return ts
}

func exportTarget(property string, target Target) mapping.Relation {
	rel := mapping.Relation{Property: property, Alias: target.Alias()}
	if t := target.Type(); t != nil {
		rel.Type = common.TypeName(t)
	}

	return rel
}
