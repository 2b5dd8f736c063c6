package schema

import (
	"fmt"
	"reflect"

	"remapper/caster"
	"remapper/internal/common"
	"remapper/internal/mapping"
	"remapper/internal/match"
)

// bind checks d against the struct type t and resolves field indexes, keys and
// targets. Called with the registry write lock held.
func (r *Registry) bind(t reflect.Type, naming Naming, d Descriptor) (Descriptor, error) {
	field, err := lookupField(t, d.property())
	if err != nil {
		return nil, err
	}

	switch d := d.(type) {
	case Column:
		return r.bindColumn(field, naming, d)
	case ManyToOne:
		return bindManyToOne(t, field, naming, d)
	case OneToMany:
		return bindOneToMany(t, field, d)
	default:
		return nil, fmt.Errorf("unsupported descriptor %T", d)
	}
}

func (r *Registry) bindColumn(field reflect.StructField, naming Naming, c Column) (Descriptor, error) {
	c.index = field.Index
	c.typ = field.Type

	c.key = c.Name
	if c.key == "" {
		c.key = naming.Apply(c.Property)
	}

	switch tr := c.Transform.(type) {
	case nil:
	case string:
		found, ok := r.funcs.Get(tr)
		if !ok {
			if s, near := match.Suggest(tr, r.funcs.Names()); near {
				return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownTransform, tr, s)
			}

			return nil, fmt.Errorf("%w %q", ErrUnknownTransform, tr)
		}

		c.cast, c.transformName = &found, tr
	case caster.Caster:
		c.cast, c.transformName = &tr, tr.String()
	default:
		parsed, err := caster.Parse(tr)
		if err != nil {
			return nil, err
		}

		c.cast, c.transformName = &parsed, parsed.String()
	}

	return c, nil
}

func bindManyToOne(t reflect.Type, field reflect.StructField, naming Naming, m ManyToOne) (Descriptor, error) {
	if !Classify(field.Type).IsOne() {
		return nil, fmt.Errorf("%w: manyToOne needs a struct, pointer to struct or interface, got %s",
			ErrBadShape, field.Type)
	}

	rel, err := bindRelation(t, field, m.Target, m.OwnKey)
	if err != nil {
		return nil, err
	}

	rel.prefix = m.Prefix
	if rel.prefix == "" {
		rel.prefix = naming.Apply(m.Property)
	} else if _, err := mapping.ParsePrefix(rel.prefix); err != nil {
		return nil, err
	}

	m.relation = rel

	return m, nil
}

func bindOneToMany(t reflect.Type, field reflect.StructField, o OneToMany) (Descriptor, error) {
	if Classify(field.Type) != ShapeSlice {
		return nil, fmt.Errorf("%w: oneToMany needs a slice of struct, pointer to struct or interface, got %s",
			ErrBadShape, field.Type)
	}

	rel, err := bindRelation(t, field, o.Target, o.OwnKey)
	if err != nil {
		return nil, err
	}

	o.relation = rel

	return o, nil
}

func bindRelation(t reflect.Type, field reflect.StructField, target Target, ownKey string) (relation, error) {
	rel := relation{index: field.Index, typ: field.Type, target: target}

	if target.IsZero() {
		related := relatedType(field.Type)
		if related == nil {
			return relation{}, fmt.Errorf("%w: %s needs an explicit target", ErrBadShape, field.Type)
		}

		rel.target = ByType(related)
	}

	if tt := rel.target.Type(); tt != nil {
		if tt.Kind() != reflect.Struct {
			return relation{}, fmt.Errorf("%w: relation target %s", ErrNotAStruct, tt)
		}

		if !rel.Accepts(tt) {
			return relation{}, fmt.Errorf("%w: %s cannot hold %s", ErrBadShape, field.Type, common.TypeName(tt))
		}
	}

	if ownKey != "" {
		own, err := lookupField(t, ownKey)
		if err != nil {
			return relation{}, fmt.Errorf("own key: %w", err)
		}

		rel.ownIndex = own.Index
	}

	return rel, nil
}

// lookupField finds an exported, possibly promoted, field of t.
func lookupField(t reflect.Type, name string) (reflect.StructField, error) {
	if name == "" {
		return reflect.StructField{}, fmt.Errorf("%w: empty property name", ErrUnknownProperty)
	}

	f, ok := t.FieldByName(name)
	if ok && f.IsExported() {
		return f, nil
	}

	candidates := make([]string, 0, t.NumField())
	for _, vf := range reflect.VisibleFields(t) {
		if vf.IsExported() && !vf.Anonymous {
			candidates = append(candidates, vf.Name)
		}
	}

	if s, near := match.Suggest(name, candidates); near {
		return reflect.StructField{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownProperty, name, s)
	}

	return reflect.StructField{}, fmt.Errorf("%w %q", ErrUnknownProperty, name)
}
