package toolcheck

import (
	"slices"
	"strings"
)

// smallRecordProps is the property count at or below which a synthesized
// object example includes every field, not just the required ones. Small
// shapes are fully illustrated; large shapes are trimmed to the essentials.
const smallRecordProps = 3

// ExampleValue synthesizes a representative value for schema. fieldName
// steers string placeholders: an "email" field gets an address, a "path"
// field a filesystem path, and so on. Enums always yield their first listed
// value.
func ExampleValue(schema *Schema, fieldName string) any {
	if schema == nil {
		return "..."
	}
	if len(schema.Enum) > 0 {
		return schema.Enum[0]
	}
	switch schema.Type {
	case TypeNumber, TypeInteger:
		return 0
	case TypeBoolean:
		return true
	case TypeString:
		return stringPlaceholder(fieldName)
	case TypeArray:
		if schema.Items != nil && schema.Items.Type == TypeObject {
			return []any{ExampleValue(schema.Items, fieldName)}
		}
		// Non-record item shapes get a single generic element; recursing
		// into them adds noise without adding shape information.
		return []any{"..."}
	case TypeObject:
		return exampleObject(schema)
	}
	return "..."
}

func exampleObject(s *Schema) map[string]any {
	out := make(map[string]any, len(s.Required))
	if len(s.Properties) == 0 {
		return out
	}
	includeAll := len(s.Properties) <= smallRecordProps
	for _, name := range propertyNames(s.Properties) {
		if !includeAll && !slices.Contains(s.Required, name) {
			continue
		}
		out[name] = ExampleValue(s.Properties[name], name)
	}
	return out
}

// stringPlaceholder picks an example string by inspecting the field name,
// case-insensitively, for well-known substrings.
func stringPlaceholder(fieldName string) string {
	n := strings.ToLower(fieldName)
	switch {
	case strings.Contains(n, "email"), strings.Contains(n, "to"), strings.Contains(n, "reply"):
		return "user@example.com"
	case strings.Contains(n, "path"), strings.Contains(n, "file"):
		return "/path/to/file"
	case strings.Contains(n, "url"), strings.Contains(n, "link"):
		return "https://example.com"
	case strings.Contains(n, "date"):
		return "2024-01-15"
	case strings.Contains(n, "id"):
		return "abc123"
	}
	return "..."
}
