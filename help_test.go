package toolcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helpFixture() *Definition {
	return &Definition{
		Name:        "send_email",
		Description: "Send an email message to a recipient",
		Parameters: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"to":      {Type: TypeString, Description: "Recipient address"},
				"subject": {Type: TypeString, Description: "Subject line"},
				"body":    {Type: TypeString, Description: "Message body"},
				"priority": {
					Type: TypeString,
					Enum: []any{"low", "normal", "high"},
				},
			},
			Required: []string{"to", "subject", "body"},
		},
	}
}

func TestBuildHelpText_CompactBlock(t *testing.T) {
	got := BuildHelpText(helpFixture())
	assert.Contains(t, got, "Tool: send_email")
	assert.Contains(t, got, "Description: Send an email message to a recipient")
	assert.Contains(t, got, "Parameters:")
	assert.Contains(t, got, "to: string (REQUIRED)")
	assert.Contains(t, got, `priority: "low" | "normal" | "high" (optional)`)
	assert.Contains(t, got, "Example: send_email(")
	assert.True(t, strings.HasSuffix(got, "Fix the parameters and try again."))

	// The example call carries only required parameters (four declared, so
	// the small-record rule does not kick in) and is valid JSON.
	assert.Contains(t, got, `"to":"user@example.com"`)
	assert.NotContains(t, got, `"priority"`)
}

func TestBuildHelpText_UnknownOrBareTool(t *testing.T) {
	assert.Empty(t, BuildHelpText(nil))
	assert.Empty(t, BuildHelpText(&Definition{Name: "noop", Description: "No params"}))
}

func TestBuildHelpText_EmptyParameterMap(t *testing.T) {
	def := &Definition{
		Name:        "ping",
		Description: "Check liveness",
		Parameters:  &Schema{Type: TypeObject},
	}
	got := BuildHelpText(def)
	// A present-but-empty map still yields banner, description, example.
	assert.Contains(t, got, "Tool: ping")
	assert.Contains(t, got, "Description: Check liveness")
	assert.Contains(t, got, "Example: ping({})")
}

func TestBuildFullHelp_Sections(t *testing.T) {
	reg := NewStaticRegistry(helpFixture())
	got := BuildFullHelp(reg, "send_email", nil)
	assert.Contains(t, got, "# send_email")
	assert.Contains(t, got, "Required Parameters:")
	assert.Contains(t, got, "Optional Parameters:")
	assert.Contains(t, got, "Example Call:")
	assert.NotContains(t, got, "Note:")

	// Required params land in the required section, not the optional one.
	reqIdx := strings.Index(got, "Required Parameters:")
	optIdx := strings.Index(got, "Optional Parameters:")
	toIdx := strings.Index(got, "to: string (REQUIRED)")
	require.True(t, reqIdx < toIdx && toIdx < optIdx)
}

func TestBuildFullHelp_OmitsEmptySections(t *testing.T) {
	reg := NewStaticRegistry(&Definition{
		Name:        "ping",
		Description: "Check liveness",
		Parameters: &Schema{
			Type:       TypeObject,
			Properties: map[string]*Schema{"verbose": {Type: TypeBoolean}},
		},
	})
	got := BuildFullHelp(reg, "ping", nil)
	assert.NotContains(t, got, "Required Parameters:")
	assert.Contains(t, got, "Optional Parameters:")

	reg = NewStaticRegistry(&Definition{
		Name: "fetch",
		Parameters: &Schema{
			Type:       TypeObject,
			Properties: map[string]*Schema{"url": {Type: TypeString}},
			Required:   []string{"url"},
		},
	})
	got = BuildFullHelp(reg, "fetch", nil)
	assert.Contains(t, got, "Required Parameters:")
	assert.NotContains(t, got, "Optional Parameters:")
}

func TestBuildFullHelp_UnknownTool(t *testing.T) {
	reg := NewStaticRegistry()
	assert.Equal(t, "Tool 'missing' not found.", BuildFullHelp(reg, "missing", nil))
}

func TestBuildFullHelp_NoteFromLimitsTable(t *testing.T) {
	reg := NewStaticRegistry(&Definition{
		Name: "search_notes",
		Parameters: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"query": {Type: TypeString},
				"limit": {Type: TypeInteger, Default: 20},
			},
			Required: []string{"query"},
		},
	})
	limits := ParamLimits{"search_notes": {"limit": 100}}
	got := BuildFullHelp(reg, "search_notes", limits)
	assert.Contains(t, got, "Note: limit is capped at a maximum of 100.")
	assert.NotContains(t, got, "Note: query")

	// Limits for other tools never leak in.
	got = BuildFullHelp(reg, "search_notes", ParamLimits{"other_tool": {"limit": 5}})
	assert.NotContains(t, got, "Note:")
}
