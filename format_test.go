package toolcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParam_OptionalWithDefault(t *testing.T) {
	schema := &Schema{Type: TypeInteger, Description: "Max results", Default: 20}
	lines := FormatParam("limit", schema, nil, "")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "(optional)")
	assert.Contains(t, lines[0], "[default: 20]")
	assert.Contains(t, lines[0], "integer")
	assert.Contains(t, lines[0], "Max results")
}

func TestFormatParam_RequiredMarker(t *testing.T) {
	schema := &Schema{Type: TypeString}
	lines := FormatParam("to", schema, []string{"to"}, "")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "(REQUIRED)")
	assert.NotContains(t, lines[0], "(optional)")
}

func TestFormatParam_EnumReplacesTypeName(t *testing.T) {
	schema := &Schema{Type: TypeString, Enum: []any{"red", "green", "blue"}}
	lines := FormatParam("color", schema, nil, "")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"red" | "green" | "blue"`)
	assert.NotContains(t, lines[0], "string")
}

func TestFormatParam_StringDefaultQuoted(t *testing.T) {
	schema := &Schema{Type: TypeString, Default: "normal"}
	lines := FormatParam("priority", schema, nil, "")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `[default: "normal"]`)
}

func TestFormatParam_ArrayLabels(t *testing.T) {
	lines := FormatParam("tags", &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}}, nil, "")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "array of string")

	lines = FormatParam("anything", &Schema{Type: TypeArray}, nil, "")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "array of any")
}

func TestFormatParam_ObjectOutline(t *testing.T) {
	schema := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"city": {Type: TypeString, Description: "City name"},
			"zip":  {Type: TypeString},
		},
		Required: []string{"city"},
	}
	lines := FormatParam("address", schema, []string{"address"}, "")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "address: object (REQUIRED)")
	// Nested lines are more deeply indented and sorted by name.
	assert.Contains(t, lines[1], "  city: string (REQUIRED)")
	assert.Contains(t, lines[2], "  zip: string (optional)")
}

func TestFormatParam_ArrayOfObjectsOutline(t *testing.T) {
	schema := &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"id":  {Type: TypeString},
				"qty": {Type: TypeInteger},
			},
			Required: []string{"id"},
		},
	}
	lines := FormatParam("items", schema, nil, "")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "array of objects")
	assert.Contains(t, lines[1], "id: string (REQUIRED)")
	assert.Contains(t, lines[2], "qty: integer (optional)")
}

func TestFormatParam_IndentPropagates(t *testing.T) {
	schema := &Schema{Type: TypeString}
	lines := FormatParam("q", schema, nil, "    ")
	require.Len(t, lines, 1)
	assert.Equal(t, "    q: string (optional)", lines[0])
}

func TestFormatParam_NilSchema(t *testing.T) {
	assert.Nil(t, FormatParam("x", nil, nil, ""))
}
