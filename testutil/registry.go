package testutil

import (
	"github.com/skosovsky/toolcheck"
)

// NewTestRegistry returns a StaticRegistry preloaded with defs.
func NewTestRegistry(defs ...*toolcheck.Definition) *toolcheck.StaticRegistry {
	return toolcheck.NewStaticRegistry(defs...)
}

// SendEmailDefinition returns the canonical fixture tool used across tests:
// three required string parameters and one optional priority enum.
func SendEmailDefinition() *toolcheck.Definition {
	return &toolcheck.Definition{
		Name:        "send_email",
		Description: "Send an email message to a recipient",
		Parameters: &toolcheck.Schema{
			Type: toolcheck.TypeObject,
			Properties: map[string]*toolcheck.Schema{
				"to":      {Type: toolcheck.TypeString, Description: "Recipient address"},
				"subject": {Type: toolcheck.TypeString, Description: "Subject line"},
				"body":    {Type: toolcheck.TypeString, Description: "Message body"},
				"priority": {
					Type: toolcheck.TypeString,
					Enum: []any{"low", "normal", "high"},
				},
			},
			Required: []string{"to", "subject", "body"},
		},
	}
}

// SearchDefinition returns a fixture tool with an integer limit parameter
// carrying a default, useful for formatter and caps-table tests.
func SearchDefinition() *toolcheck.Definition {
	return &toolcheck.Definition{
		Name:        "search_notes",
		Description: "Search saved notes",
		Parameters: &toolcheck.Schema{
			Type: toolcheck.TypeObject,
			Properties: map[string]*toolcheck.Schema{
				"query": {Type: toolcheck.TypeString, Description: "Search query"},
				"limit": {
					Type:        toolcheck.TypeInteger,
					Description: "Max results",
					Default:     20,
				},
			},
			Required: []string{"query"},
		},
	}
}
