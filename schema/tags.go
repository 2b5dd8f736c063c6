package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"remapper/internal/match"
)

// TagName is the struct tag key read by RegisterTags.
const TagName = "remap"

// RegisterTags declares every field of t carrying a `remap` tag.
//
// Tag grammar is a kind followed by key=value options:
//
//	remap:"column"
//	remap:"column,name=Principal,transform=trim"
//	remap:"manyToOne,own=RelationID,match=id,prefix=Desglose,alias=many1"
//	remap:"oneToMany,own=ID,inverse=parentId,alias=items"
//	remap:"-"
//
// Kinds are matched loosely, so "many_to_one" and "ManyToOne" are accepted too.
func (r *Registry) RegisterTags(t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v", ErrNotAStruct, t)
	}

	var descs []Descriptor

	for _, f := range reflect.VisibleFields(t) {
		tag, ok := f.Tag.Lookup(TagName)
		if !ok || tag == "-" || f.Anonymous {
			continue
		}

		d, err := ParseTag(f.Name, tag)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t, f.Name, err)
		}

		descs = append(descs, d)
	}

	return r.Register(t, descs...)
}

// ParseTag builds the descriptor of property from a `remap` tag value.
func ParseTag(property, tag string) (Descriptor, error) {
	parts := strings.Split(tag, ",")
	kind := match.NormalizeIdent(strings.TrimSpace(parts[0]))

	opts := make(map[string]string, len(parts)-1)

	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		k, v, ok := strings.Cut(p, "=")
		if !ok || v == "" {
			return nil, fmt.Errorf("%w: option %q needs a value", ErrInvalidTag, p)
		}

		opts[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	take := func(allowed ...string) error {
		for k := range opts {
			if !slices.Contains(allowed, k) {
				return fmt.Errorf("%w: option %q is not valid for %s", ErrInvalidTag, k, parts[0])
			}
		}

		return nil
	}

	target := func() Target {
		if a := opts["alias"]; a != "" {
			return ByAlias(a)
		}

		return Target{}
	}

	switch kind {
	case "", "column":
		if err := take("name", "transform"); err != nil {
			return nil, err
		}

		c := Column{Property: property, Name: opts["name"]}
		if tr := opts["transform"]; tr != "" {
			c.Transform = tr
		}

		return c, nil

	case "manytoone":
		if err := take("own", "match", "prefix", "alias"); err != nil {
			return nil, err
		}

		return ManyToOne{
			Property: property,
			Target:   target(),
			OwnKey:   opts["own"],
			MatchKey: opts["match"],
			Prefix:   opts["prefix"],
		}, nil

	case "onetomany":
		if err := take("own", "inverse", "alias"); err != nil {
			return nil, err
		}

		return OneToMany{
			Property:   property,
			Target:     target(),
			OwnKey:     opts["own"],
			InverseKey: opts["inverse"],
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidTag, parts[0])
	}
}
