package schema

import (
	"reflect"
	"slices"
)

// TargetSchema holds every declaration of one target type, in declaration order per kind.
// A registered schema is never mutated; registration replaces it with an extended copy.
type TargetSchema struct {
	Type      reflect.Type
	Columns   []Column
	ManyToOne []ManyToOne
	OneToMany []OneToMany
}

// Len returns the number of declarations.
func (s *TargetSchema) Len() int {
	return len(s.Columns) + len(s.ManyToOne) + len(s.OneToMany)
}

// IsEmpty reports whether no declarations exist.
func (s *TargetSchema) IsEmpty() bool {
	return s.Len() == 0
}

// Properties returns every declared property in kind then declaration order.
func (s *TargetSchema) Properties() []string {
	out := make([]string, 0, s.Len())

	for _, c := range s.Columns {
		out = append(out, c.Property)
	}

	for _, m := range s.ManyToOne {
		out = append(out, m.Property)
	}

	for _, o := range s.OneToMany {
		out = append(out, o.Property)
	}

	return out
}

// Has reports whether property is declared.
func (s *TargetSchema) Has(property string) bool {
	return slices.Contains(s.Properties(), property)
}

func (s *TargetSchema) clone() *TargetSchema {
	return &TargetSchema{
		Type:      s.Type,
		Columns:   slices.Clone(s.Columns),
		ManyToOne: slices.Clone(s.ManyToOne),
		OneToMany: slices.Clone(s.OneToMany),
	}
}

func (s *TargetSchema) add(d Descriptor) {
	switch d := d.(type) {
	case Column:
		s.Columns = append(s.Columns, d)
	case ManyToOne:
		s.ManyToOne = append(s.ManyToOne, d)
	case OneToMany:
		s.OneToMany = append(s.OneToMany, d)
	}
}
