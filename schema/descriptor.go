package schema

import (
	"reflect"

	"remapper/caster"
)

// KindEnum names the three kinds of field declarations.
type KindEnum int

const (
	KindColumn KindEnum = iota
	KindManyToOne
	KindOneToMany
)

func (k KindEnum) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindManyToOne:
		return "manyToOne"
	case KindOneToMany:
		return "oneToMany"
	default:
		return "unknown"
	}
}

// Descriptor is one field declaration: Column, ManyToOne or OneToMany.
type Descriptor interface {
	Kind() KindEnum
	property() string
}

// Column maps a raw record key into a property.
type Column struct {
	Property string

	// Name overrides the raw key; by default it is derived from Property by the registry naming.
	Name string

	// Transform optionally converts the raw value before assignment. It is a
	// function in one of the caster shapes, a caster.Caster, or the name of a
	// transform added to the registry.
	Transform any

	key           string
	index         []int
	typ           reflect.Type
	cast          *caster.Caster
	transformName string
}

func (Column) Kind() KindEnum      { return KindColumn }
func (c Column) property() string { return c.Property }

// Key returns the unqualified raw key the column reads.
func (c Column) Key() string { return c.key }

// Index returns the field index path for reflect.Value.FieldByIndex.
func (c Column) Index() []int { return c.index }

// Type returns the property type.
func (c Column) Type() reflect.Type { return c.typ }

// Caster returns the transform applied to raw values, if any.
func (c Column) Caster() (caster.Caster, bool) {
	if c.cast == nil {
		return caster.Caster{}, false
	}

	return *c.cast, true
}

// ManyToOne resolves a single related value, either joined against a source
// record set or embedded in the same record under a dotted prefix.
type ManyToOne struct {
	Property string
	Target   Target

	// OwnKey names the property whose value is matched against MatchKey.
	OwnKey string
	// MatchKey is the raw key of the related records.
	MatchKey string
	// Prefix overrides the embedded prefix, by default derived from Property.
	Prefix string

	relation
}

func (ManyToOne) Kind() KindEnum      { return KindManyToOne }
func (m ManyToOne) property() string { return m.Property }

// Joined reports whether both match keys are declared.
func (m ManyToOne) Joined() bool { return m.OwnKey != "" && m.MatchKey != "" }

// EmbedPrefix returns the prefix used by the embedded style.
func (m ManyToOne) EmbedPrefix() string { return m.prefix }

// OneToMany groups the records of a source whose InverseKey equals the value of OwnKey.
type OneToMany struct {
	Property string
	Target   Target

	OwnKey     string
	InverseKey string

	relation
}

func (OneToMany) Kind() KindEnum      { return KindOneToMany }
func (o OneToMany) property() string { return o.Property }

// Valid reports whether both keys are declared; an invalid relation never expands.
func (o OneToMany) Valid() bool { return o.OwnKey != "" && o.InverseKey != "" }

// relation holds what registration resolves for both relation kinds.
type relation struct {
	index    []int
	ownIndex []int
	typ      reflect.Type
	target   Target
	prefix   string
}

// Index returns the field index path of the relation property.
func (r relation) Index() []int { return r.index }

// OwnIndex returns the field index path of the own key, nil when undeclared.
func (r relation) OwnIndex() []int { return r.ownIndex }

// Type returns the property type.
func (r relation) Type() reflect.Type { return r.typ }

// Resolved returns the declared target, or the one inferred from the property type.
func (r relation) Resolved() Target { return r.target }

// Accepts reports whether values mapped into concrete fit the relation property.
func (r relation) Accepts(concrete reflect.Type) bool {
	slot := r.typ
	if slot.Kind() == reflect.Slice {
		slot = slot.Elem()
	}

	return accepts(slot, concrete)
}
