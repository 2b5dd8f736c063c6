package mapping

// File represents the root of a YAML schema declaration file.
type File struct {
	// Version of the schema file format.
	Version string `yaml:"version,omitempty"`

	// Naming derives raw keys for columns without an explicit name.
	// One of identity, lower_camel, upper_camel, snake_case.
	Naming string `yaml:"naming,omitempty"`

	// Schemas is a list of per type declarations.
	Schemas []TypeSchema `yaml:"schemas"`

	// Transforms binds names usable by columns to registered functions.
	Transforms []TransformDef `yaml:"transforms,omitempty"`
}

// TypeSchema declares the columns and relations of one target type.
type TypeSchema struct {
	// Type identifier (e.g. "blog.Post" or full path).
	Type string `yaml:"type"`

	// Naming overrides the file level naming for this type.
	Naming string `yaml:"naming,omitempty"`

	Columns   ColumnArray `yaml:"columns,omitempty"`
	ManyToOne []Relation  `yaml:"many_to_one,omitempty"`
	OneToMany []Relation  `yaml:"one_to_many,omitempty"`
}

// Properties returns every declared property name in declaration order.
func (ts *TypeSchema) Properties() []string {
	out := make([]string, 0, len(ts.Columns)+len(ts.ManyToOne)+len(ts.OneToMany))

	for _, c := range ts.Columns {
		out = append(out, c.Property)
	}

	for _, r := range ts.ManyToOne {
		out = append(out, r.Property)
	}

	for _, r := range ts.OneToMany {
		out = append(out, r.Property)
	}

	return out
}

// Column maps one raw record key into one property.
// YAML formats supported:
//   - Simple string: "ID"
//   - Shorthand: {Title: headline}
//   - Full: {property: Title, name: headline, transform: trim}
type Column struct {
	Property  string `yaml:"property"`
	Name      string `yaml:"name,omitempty"`
	Transform string `yaml:"transform,omitempty"`
}

// ColumnArray is a list of columns accepting every Column YAML format.
type ColumnArray []Column

// Relation declares a many-to-one or one-to-many relation.
// Type and Alias are mutually exclusive; with neither the target is inferred
// from the property type.
type Relation struct {
	Property   string `yaml:"property"`
	Type       string `yaml:"type,omitempty"`
	Alias      string `yaml:"alias,omitempty"`
	OwnKey     string `yaml:"own_key,omitempty"`
	MatchKey   string `yaml:"match_key,omitempty"`
	InverseKey string `yaml:"inverse_key,omitempty"`
	Prefix     string `yaml:"prefix,omitempty"`
}

// IsJoined reports whether a many-to-one relation carries both match keys.
func (r Relation) IsJoined() bool {
	return r.OwnKey != "" && r.MatchKey != ""
}

// TransformDef names a transform function.
type TransformDef struct {
	// Name is the identifier used by columns.
	Name string `yaml:"name"`

	// Func is the name the function was registered under (defaults to Name).
	Func string `yaml:"func,omitempty"`

	// Description is optional documentation.
	Description string `yaml:"description,omitempty"`
}

// Naming values accepted by File.Naming and TypeSchema.Naming.
const (
	NamingIdentity   = "identity"
	NamingLowerCamel = "lower_camel"
	NamingUpperCamel = "upper_camel"
	NamingSnakeCase  = "snake_case"
)

// IsValidNaming reports whether s names a known naming strategy (empty means default).
func IsValidNaming(s string) bool {
	switch s {
	case "", NamingIdentity, NamingLowerCamel, NamingUpperCamel, NamingSnakeCase:
		return true
	default:
		return false
	}
}
