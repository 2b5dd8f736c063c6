package remap

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"remapper/internal/common"
	"remapper/options"
	"remapper/primitive"
	"remapper/record"
	"remapper/schema"
	"remapper/source"
)

// mapper maps the records of one call. It only reads shared state.
type mapper struct {
	opts     options.Options
	registry *schema.Registry
	mode     record.MatchMode
	log      zerolog.Logger
}

func newMapper(opts options.Options) *mapper {
	opts.Registry.Freeze()

	return &mapper{
		opts:     opts,
		registry: opts.Registry,
		mode:     opts.MatchMode(),
		log:      opts.Logger,
	}
}

// mapOne maps rec into a new *t. The bool result is false when the instance
// collapsed, in which case the value is invalid.
func (m *mapper) mapOne(t reflect.Type, rec record.Record, prefix string, depth int) (reflect.Value, bool, error) {
	if depth > m.opts.MaxDepth {
		return reflect.Value{}, false, fmt.Errorf("%w (%d) at %s", ErrDepthExceeded, m.opts.MaxDepth, common.TypeName(t))
	}

	ts := m.registry.Lookup(t)
	ptr := reflect.New(t)
	obj := ptr.Elem()
	found := false
	keys := make(keySet, len(ts.Columns))

	for _, col := range ts.Columns {
		ok, set, err := m.column(obj, col, rec, prefix)
		if err != nil {
			return reflect.Value{}, false, err
		}

		keys[col.Property] = set
		found = found || ok
	}

	for _, rel := range ts.ManyToOne {
		ok, err := m.manyToOne(obj, rel, keys, rec, prefix, depth)
		if err != nil {
			return reflect.Value{}, false, err
		}

		found = found || ok
	}

	for _, rel := range ts.OneToMany {
		ok, err := m.oneToMany(obj, rel, keys, depth)
		if err != nil {
			return reflect.Value{}, false, err
		}

		found = found || ok
	}

	if !found {
		m.log.Debug().Str("type", common.TypeName(t)).Str("prefix", prefix).Msg("record collapsed")

		return reflect.Value{}, false, nil
	}

	return ptr, true, nil
}

// keySet tells, per column property, whether the record supplied a non-null value.
type keySet map[string]bool

// own returns the value of the own key property. A column that the record left
// missing or null yields no key, whatever zero value its field holds.
func (k keySet) own(obj reflect.Value, property string, index []int) (any, bool) {
	if set, ok := k[property]; ok && !set {
		return nil, false
	}

	v := obj.FieldByIndex(index).Interface()

	return v, !options.IsNull(v)
}

// column assigns one column. The second result reports whether the record
// supplied a non-null value for it.
func (m *mapper) column(obj reflect.Value, col schema.Column, rec record.Record, prefix string) (bool, bool, error) {
	raw, present := rec.Lookup(record.Join(prefix, col.Key()), m.mode)

	if fn, ok := col.Caster(); ok && present && !options.IsNull(raw) {
		out, produced, err := fn.Call(raw, m.opts.Conversions)
		if err != nil {
			return false, false, fieldError(obj.Type(), col.Property, err)
		}

		if !produced {
			return false, false, nil
		}

		raw = out
	}

	if !present {
		return false, false, nil
	}

	if err := primitive.Assign(obj.FieldByIndex(col.Index()), raw, m.opts.Conversions); err != nil {
		return false, false, fieldError(obj.Type(), col.Property, err)
	}

	return m.opts.Found.IsFound(raw, present), !options.IsNull(raw), nil
}

func (m *mapper) manyToOne(obj reflect.Value, rel schema.ManyToOne, keys keySet, rec record.Record, prefix string, depth int) (bool, error) {
	src, concrete, ok, err := m.resolve(obj.Type(), rel.Property, rel.Resolved(), rel.Accepts)
	if err != nil {
		return false, err
	}

	if rel.Resolved().IsAlias() && !ok {
		return false, fieldError(obj.Type(), rel.Property, fmt.Errorf("%w %q", ErrUnresolvedAlias, rel.Resolved().Alias()))
	}

	var (
		nested reflect.Value
		found  bool
	)

	if ok && rel.Joined() {
		own, set := keys.own(obj, rel.OwnKey, rel.OwnIndex())
		if !set {
			m.log.Debug().
				Str("type", common.TypeName(obj.Type())).
				Str("property", rel.Property).
				Msg("joined relation has no own key")

			return false, nil
		}

		matched, hit := lo.Find(src.Records, func(r record.Record) bool {
			v, present := r.Lookup(rel.MatchKey, m.mode)
			return present && record.SameKey(own, v, m.opts.CoerceKeys)
		})
		if !hit {
			m.log.Debug().
				Str("type", common.TypeName(obj.Type())).
				Str("property", rel.Property).
				Interface("key", own).
				Msg("joined relation has no match")

			return false, nil
		}

		nested, found, err = m.mapOne(concrete, matched, "", depth+1)
	} else {
		embedded := record.Join(prefix, rel.EmbedPrefix())
		m.log.Debug().
			Str("type", common.TypeName(obj.Type())).
			Str("property", rel.Property).
			Str("prefix", embedded).
			Msg("embedded relation")

		nested, found, err = m.mapOne(concrete, rec, embedded, depth+1)
	}

	if err != nil {
		return false, err
	}

	if !found {
		return false, nil
	}

	place(obj.FieldByIndex(rel.Index()), nested)

	return true, nil
}

func (m *mapper) oneToMany(obj reflect.Value, rel schema.OneToMany, keys keySet, depth int) (bool, error) {
	if !rel.Valid() {
		return false, nil
	}

	src, concrete, ok, err := m.resolve(obj.Type(), rel.Property, rel.Resolved(), rel.Accepts)
	if err != nil || !ok {
		return false, err
	}

	own, set := keys.own(obj, rel.OwnKey, rel.OwnIndex())

	matched := lo.Filter(src.Records, func(r record.Record, _ int) bool {
		v, present := r.Lookup(rel.InverseKey, m.mode)
		return set && present && record.SameKey(own, v, m.opts.CoerceKeys)
	})

	list := reflect.MakeSlice(rel.Type(), len(matched), len(matched))

	for i, r := range matched {
		nested, found, err := m.mapOne(concrete, r, "", depth+1)
		if err != nil {
			return false, err
		}

		if found {
			place(list.Index(i), nested)
		}
	}

	obj.FieldByIndex(rel.Index()).Set(list)

	return true, nil
}

// resolve finds the source of a relation and the concrete type its records map into.
// For alias targets the concrete type comes from the source; it must fit the property.
func (m *mapper) resolve(owner reflect.Type, property string, target schema.Target, accepts func(reflect.Type) bool) (source.Source, reflect.Type, bool, error) {
	src, ok := m.opts.Sources.Resolve(target)

	if !target.IsAlias() {
		return src, target.Type(), ok, nil
	}

	if !ok {
		return src, nil, false, nil
	}

	concrete := src.Type
	for concrete != nil && concrete.Kind() == reflect.Ptr {
		concrete = concrete.Elem()
	}

	if concrete == nil || concrete.Kind() != reflect.Struct || !accepts(concrete) {
		return src, nil, false, fieldError(owner, property,
			fmt.Errorf("%w: source %s is %s", ErrTypeMismatch, target, common.TypeName(src.Type)))
	}

	return src, concrete, true, nil
}

// place stores the mapped *T ptr into a relation slot of type T, *T or an interface.
func place(slot, ptr reflect.Value) {
	switch {
	case slot.Kind() == reflect.Struct:
		slot.Set(ptr.Elem())
	case ptr.Type().AssignableTo(slot.Type()):
		slot.Set(ptr)
	default:
		slot.Set(ptr.Elem())
	}
}

func fieldError(t reflect.Type, property string, err error) error {
	return fmt.Errorf("%s.%s: %w", common.TypeName(t), property, err)
}
