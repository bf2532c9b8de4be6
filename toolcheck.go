package toolcheck

// Definition describes one callable tool: a unique name, a human-readable
// description, and the root object schema for its parameters. Parameters may
// be nil for a tool that declares no parameter map at all.
type Definition struct {
	Name        string
	Description string
	Parameters  *Schema
}

// Registry is the read boundary to tool storage. It is provider-agnostic;
// StaticRegistry is the in-memory implementation, but any lookup layer
// (config files, a database, an MCP session) can satisfy it.
type Registry interface {
	GetDefinition(name string) (*Definition, bool)
	// GetDefinitions returns all registered definitions in a stable order.
	GetDefinitions() []*Definition
}

// ToolCall is a single candidate invocation as produced by the LLM.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// Result is the outcome of validating one tool call. Valid is true exactly
// when Errors is empty. CorrectedName is set only when the supplied name was
// auto-resolved to a different registered tool; all validation then ran
// against that tool's schema. HelpText is set only when the call is invalid
// and a definition was ultimately resolved.
type Result struct {
	Valid         bool
	Errors        []ValidationError
	CorrectedName string
	HelpText      string
}
