package schema

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"remapper/internal/mapping"
)

// Naming derives the raw record key of a property declared without an explicit name.
type Naming int

const (
	Identity   Naming = iota // "PostID" -> "PostID"
	LowerCamel               // "CreatedAt" -> "createdAt"
	UpperCamel               // "created_at" -> "CreatedAt"
	SnakeCase                // "PostID" -> "post_id"
)

// Apply returns the raw key for property.
func (n Naming) Apply(property string) string {
	switch n {
	case LowerCamel:
		return strcase.ToLowerCamel(property)
	case UpperCamel:
		return strcase.ToCamel(property)
	case SnakeCase:
		return strcase.ToSnake(property)
	default:
		return property
	}
}

func (n Naming) String() string {
	switch n {
	case Identity:
		return mapping.NamingIdentity
	case LowerCamel:
		return mapping.NamingLowerCamel
	case UpperCamel:
		return mapping.NamingUpperCamel
	case SnakeCase:
		return mapping.NamingSnakeCase
	default:
		return fmt.Sprintf("Naming(%d)", int(n))
	}
}

// ParseNaming parses the names used in schema files; the empty string is Identity.
func ParseNaming(s string) (Naming, error) {
	switch s {
	case "", mapping.NamingIdentity:
		return Identity, nil
	case mapping.NamingLowerCamel:
		return LowerCamel, nil
	case mapping.NamingUpperCamel:
		return UpperCamel, nil
	case mapping.NamingSnakeCase:
		return SnakeCase, nil
	default:
		return Identity, fmt.Errorf("unknown naming %q", s)
	}
}
