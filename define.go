package toolcheck

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// DefineTool derives a Definition from the argument struct T using JSON
// Schema reflection, so one set of struct tags drives both the schema shown
// to the LLM and the validation of its calls. jsonschema struct tags
// (required, enum, default) and description tags are honored.
func DefineTool[T any](name, description string) (*Definition, error) {
	r := &jsonschema.Reflector{
		DoNotReference:             true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}
	root := fromReflected(r.Reflect(new(T)))
	if root == nil || root.Type != TypeObject {
		return nil, fmt.Errorf("tool %s: argument type must be a struct", name)
	}
	return &Definition{Name: name, Description: description, Parameters: root}, nil
}

// fromReflected converts the reflected JSON Schema tree into this package's
// closed Schema sum, keeping only the subset the validators model.
func fromReflected(s *jsonschema.Schema) *Schema {
	if s == nil {
		return nil
	}
	out := &Schema{
		Type:        Type(s.Type),
		Description: s.Description,
		Default:     s.Default,
	}
	if len(s.Enum) > 0 {
		out.Enum = append([]any(nil), s.Enum...)
	}
	if s.Items != nil {
		out.Items = fromReflected(s.Items)
	}
	if s.Properties != nil && s.Properties.Len() > 0 {
		out.Properties = make(map[string]*Schema, s.Properties.Len())
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Properties[pair.Key] = fromReflected(pair.Value)
		}
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	return out
}

// DefineDynamicTool builds a Definition from a raw JSON Schema document, for
// tools whose schemas arrive at runtime (OpenAPI, MCP sessions). The root
// must be an object schema.
func DefineDynamicTool(name, description string, schemaJSON []byte) (*Definition, error) {
	root, err := SchemaFromJSON(schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}
	if root.Type != TypeObject {
		return nil, fmt.Errorf("tool %s: schema root must have type object", name)
	}
	return &Definition{Name: name, Description: description, Parameters: root}, nil
}

// SchemaFromJSON parses a raw JSON Schema document into a Schema. Only the
// keywords this package models are read (type, description, enum, default,
// properties, required, items); everything else is ignored.
func SchemaFromJSON(data []byte) (*Schema, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return schemaFromMap(raw), nil
}

func schemaFromMap(raw map[string]any) *Schema {
	s := &Schema{}
	if t, ok := raw["type"].(string); ok {
		s.Type = Type(t)
	}
	if d, ok := raw["description"].(string); ok {
		s.Description = d
	}
	s.Default = raw["default"]
	if e, ok := raw["enum"].([]any); ok && len(e) > 0 {
		s.Enum = append([]any(nil), e...)
	}
	if items, ok := raw["items"].(map[string]any); ok {
		s.Items = schemaFromMap(items)
	}
	if props, ok := raw["properties"].(map[string]any); ok && len(props) > 0 {
		s.Properties = make(map[string]*Schema, len(props))
		for name, v := range props {
			if m, ok := v.(map[string]any); ok {
				s.Properties[name] = schemaFromMap(m)
			} else {
				s.Properties[name] = &Schema{}
			}
		}
	}
	switch req := raw["required"].(type) {
	case []any:
		for _, v := range req {
			if field, ok := v.(string); ok {
				s.Required = append(s.Required, field)
			}
		}
	case []string:
		s.Required = append([]string(nil), req...)
	}
	return s
}
