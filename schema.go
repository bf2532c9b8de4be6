package toolcheck

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Type is the tag of a Schema node. The empty string means untyped: any
// shape is accepted at that node.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
)

// Schema is an immutable description of one value's expected shape: a type
// tag plus the optional enum, default, description, object fields, and array
// item schema. Trees may be arbitrarily deep; the validator guards depth and
// element count (see WithMaxDepth, WithMaxElements).
type Schema struct {
	Type        Type
	Description string
	// Enum lists the allowed literal values, in order. When present the
	// first entry doubles as the synthesized example value.
	Enum    []any
	Default any
	// Properties and Required apply to object schemas. Required preserves
	// the declared field order.
	Properties map[string]*Schema
	Required   []string
	// Items applies to array schemas.
	Items *Schema
}

// propertyNames returns the property keys in sorted order. Go maps are
// unordered; sorting keeps every walk (validation, formatting, examples)
// deterministic.
func propertyNames(props map[string]*Schema) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// classifyValue maps a runtime value to one of the type tags: string,
// boolean, object, array, integer, number. A numeric value with no
// fractional part always classifies as integer, whatever its Go carrier
// type; anything else numeric is number. Values decoded from JSON hit the
// fast paths; other carriers (map[string]string, []int, named types) fall
// back to reflection.
func classifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float64:
		return classifyFloat(t)
	case float32:
		return classifyFloat(float64(t))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return "integer"
		}
		if f, err := t.Float64(); err == nil {
			return classifyFloat(f)
		}
		return "number"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return classifyFloat(rv.Float())
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			return classifyValue(rv.Elem().Interface())
		}
	}
	return fmt.Sprintf("%T", v)
}

func classifyFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "number"
	}
	if f == math.Trunc(f) {
		return "integer"
	}
	return "number"
}

// asObject returns value as a string-keyed map. Non-map[string]any carriers
// are converted via reflection.
func asObject(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	for _, key := range rv.MapKeys() {
		out[key.String()] = rv.MapIndex(key).Interface()
	}
	return out, true
}

// asList returns value as a []any. Non-[]any slices are converted via
// reflection.
func asList(value any) ([]any, bool) {
	if l, ok := value.([]any); ok {
		return l, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// renderLiteral renders a value the way error messages and parameter lines
// quote it: strings quoted, integral numbers without a decimal point,
// everything else as compact JSON.
func renderLiteral(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if classifyFloat(t) == "integer" {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}

// enumLabel renders allowed enum values quoted and pipe-separated, e.g.
// `"red" | "green" | "blue"`.
func enumLabel(enum []any) string {
	parts := make([]string, len(enum))
	for i, v := range enum {
		parts[i] = renderLiteral(v)
	}
	return strings.Join(parts, " | ")
}

// literalEqual compares an input value against an enum literal. Numbers
// compare by value regardless of carrier type (an LLM's 2 equals a schema's
// 2.0); everything else compares deeply.
func literalEqual(a, b any) bool {
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}
