package toolcheck

import (
	"fmt"
	"strings"
)

// Default guard values for recursion depth and list length. The schema tree
// and the payload are both caller-supplied and potentially hostile; the
// guards turn unbounded descent into an ordinary validation error.
const (
	DefaultMaxDepth    = 64
	DefaultMaxElements = 10000
)

type guards struct {
	maxDepth    int
	maxElements int
}

func defaultGuards() guards {
	return guards{maxDepth: DefaultMaxDepth, maxElements: DefaultMaxElements}
}

// ValidateValue checks value against schema and returns every structural
// error found, in document order of traversal, with paths rooted at
// "params". A nil value passes regardless of the declared type: absence is
// the required-field logic's concern, not the shape checker's.
func ValidateValue(value any, schema *Schema) []ValidationError {
	return validateValue(value, schema, "params", 0, defaultGuards())
}

func validateValue(value any, s *Schema, path string, depth int, g guards) []ValidationError {
	if value == nil || s == nil {
		return nil
	}
	if g.maxDepth > 0 && depth >= g.maxDepth {
		return []ValidationError{schemaTooComplexError(path, g.maxDepth)}
	}

	if s.Type != "" {
		received := classifyValue(value)
		if !typeAccepts(s.Type, received) {
			// A wrong type makes every further check for this node
			// meaningless; report the mismatch alone.
			return []ValidationError{typeMismatchError(path, s.Type, received)}
		}
	}

	var errs []ValidationError
	if len(s.Enum) > 0 && !enumContains(s.Enum, value) {
		errs = append(errs, enumViolationError(path, s.Enum, value))
	}

	if obj, ok := asObject(value); ok && (s.Type == TypeObject || len(s.Properties) > 0 || len(s.Required) > 0) {
		for _, field := range s.Required {
			if v, present := obj[field]; !present || v == nil {
				errs = append(errs, missingRequiredError(path, field, s.Properties[field]))
			}
		}
		for _, field := range propertyNames(s.Properties) {
			v, present := obj[field]
			if !present || v == nil {
				continue
			}
			errs = append(errs, validateValue(v, s.Properties[field], path+"."+field, depth+1, g)...)
		}
		return errs
	}

	if s.Items != nil {
		if list, ok := asList(value); ok {
			if g.maxElements > 0 && len(list) > g.maxElements {
				return append(errs, payloadTooLargeError(path, g.maxElements))
			}
			for i, item := range list {
				errs = append(errs, validateValue(item, s.Items, fmt.Sprintf("%s[%d]", path, i), depth+1, g)...)
			}
		}
	}
	return errs
}

// typeAccepts reports whether a value classified as received satisfies the
// declared type. Integers are a subtype of number; the reverse does not
// hold.
func typeAccepts(declared Type, received string) bool {
	if declared == TypeNumber {
		return received == "number" || received == "integer"
	}
	return string(declared) == received
}

func enumContains(enum []any, value any) bool {
	for _, allowed := range enum {
		if literalEqual(value, allowed) {
			return true
		}
	}
	return false
}

// CheckRequired is a cheap, type-agnostic presence pre-check. It returns a
// single "Missing required parameter(s): ..." message naming the missing
// fields in their declared order, or "" when nothing is missing. An unknown
// tool, a tool without parameters, or an empty required set also yield "":
// this is an advisory pass, not the authoritative gate (that is
// Checker.ValidateCall).
func CheckRequired(reg Registry, toolName string, args map[string]any) string {
	def, ok := reg.GetDefinition(toolName)
	if !ok || def.Parameters == nil || len(def.Parameters.Required) == 0 {
		return ""
	}
	var missing []string
	for _, field := range def.Parameters.Required {
		if v, present := args[field]; !present || v == nil {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return "Missing required parameter(s): " + strings.Join(missing, ", ")
}
