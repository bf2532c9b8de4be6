package toolcheck

import (
	"fmt"
	"slices"
)

// FormatParam renders one parameter as human-readable description lines.
// Scalars produce a single line: name, type label (enum literals in place of
// a bare type), a (REQUIRED)/(optional) marker from requiredSet membership,
// an optional [default: ...] suffix, and the description when present.
// Objects and arrays of objects follow the summary line with one more deeply
// indented line per nested property, so nested shapes render as an outline.
func FormatParam(name string, schema *Schema, requiredSet []string, indent string) []string {
	if schema == nil {
		return nil
	}
	marker := "(optional)"
	if slices.Contains(requiredSet, name) {
		marker = "(REQUIRED)"
	}
	line := fmt.Sprintf("%s%s: %s %s", indent, name, typeLabel(schema), marker)
	if schema.Default != nil {
		line += fmt.Sprintf(" [default: %s]", renderLiteral(schema.Default))
	}
	if schema.Description != "" {
		line += " — " + schema.Description
	}
	lines := []string{line}

	nested := schema
	if schema.Type == TypeArray && schema.Items != nil && schema.Items.Type == TypeObject {
		nested = schema.Items
	}
	if nested.Type == TypeObject && len(nested.Properties) > 0 {
		for _, child := range propertyNames(nested.Properties) {
			lines = append(lines, FormatParam(child, nested.Properties[child], nested.Required, indent+"  ")...)
		}
	}
	return lines
}

// typeLabel returns the human-facing type name for a schema node. Enum
// schemas render their allowed literals instead of a bare type.
func typeLabel(s *Schema) string {
	if len(s.Enum) > 0 {
		return enumLabel(s.Enum)
	}
	switch s.Type {
	case TypeArray:
		switch {
		case s.Items == nil || s.Items.Type == "":
			return "array of any"
		case s.Items.Type == TypeObject:
			return "array of objects"
		default:
			return "array of " + string(s.Items.Type)
		}
	case "":
		return "any"
	default:
		return string(s.Type)
	}
}
