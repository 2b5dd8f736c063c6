package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Column.
func (c *Column) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var property string
		if err := node.Decode(&property); err != nil {
			return err
		}

		*c = Column{Property: property}

		return nil

	case yaml.MappingNode:
		if isShorthand(node) {
			var property, name string
			if err := node.Content[0].Decode(&property); err != nil {
				return err
			}

			if err := node.Content[1].Decode(&name); err != nil {
				return err
			}

			*c = Column{Property: property, Name: name}

			return nil
		}

		// plain alias avoids recursing into this method
		type plain Column

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*c = Column(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected column name or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Column.
// Outputs the shortest form able to carry the column.
func (c Column) MarshalYAML() (any, error) {
	switch {
	case c.Name == "" && c.Transform == "":
		return c.Property, nil
	case c.Transform == "":
		return map[string]string{c.Property: c.Name}, nil
	default:
		type plain Column
		return plain(c), nil
	}
}

// isShorthand reports a single entry mapping whose key is not a Column field name.
func isShorthand(node *yaml.Node) bool {
	if len(node.Content) != 2 || node.Content[1].Kind != yaml.ScalarNode {
		return false
	}

	switch node.Content[0].Value {
	case "property", "name", "transform":
		return false
	default:
		return true
	}
}
