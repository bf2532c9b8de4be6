package toolcheck

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// ParamLimits maps tool name → parameter name → documented upper bound. The
// table is supplied by the application (WithParamLimits); the library ships
// no built-in caps, so new tools can register limits without touching it.
type ParamLimits map[string]map[string]int

// BuildHelpText renders the compact self-correction block for def: banner,
// description, parameter list, an example call with synthesized arguments,
// and a fixed retry instruction. It returns "" for a nil definition or one
// whose schema declares no parameter map at all. A present-but-empty
// parameter map still produces the banner, description, and example; only
// the parameter list is then empty.
func BuildHelpText(def *Definition) string {
	if def == nil || def.Parameters == nil {
		return ""
	}
	params := def.Parameters
	var b strings.Builder
	fmt.Fprintf(&b, "Tool: %s\n", def.Name)
	if def.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", def.Description)
	}
	b.WriteString("Parameters:\n")
	for _, name := range propertyNames(params.Properties) {
		for _, line := range FormatParam(name, params.Properties[name], params.Required, "  ") {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "Example: %s\n", exampleCall(def))
	b.WriteString("Fix the parameters and try again.")
	return b.String()
}

// BuildFullHelp renders the sectioned reference for name: header,
// description, Required Parameters and Optional Parameters sections (each
// omitted entirely when empty), an Example Call, and a Note line for every
// parameter present in the limits table. Unknown tools get a single
// "not found" sentence.
func BuildFullHelp(reg Registry, name string, limits ParamLimits) string {
	def, ok := reg.GetDefinition(name)
	if !ok {
		return fmt.Sprintf("Tool '%s' not found.", name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", def.Name)
	if def.Description != "" {
		b.WriteString(def.Description)
		b.WriteByte('\n')
	}
	if def.Parameters == nil {
		return strings.TrimRight(b.String(), "\n")
	}
	params := def.Parameters

	var required, optional []string
	for _, pname := range propertyNames(params.Properties) {
		lines := FormatParam(pname, params.Properties[pname], params.Required, "  ")
		if slices.Contains(params.Required, pname) {
			required = append(required, lines...)
		} else {
			optional = append(optional, lines...)
		}
	}
	if len(required) > 0 {
		b.WriteString("\nRequired Parameters:\n")
		b.WriteString(strings.Join(required, "\n"))
		b.WriteByte('\n')
	}
	if len(optional) > 0 {
		b.WriteString("\nOptional Parameters:\n")
		b.WriteString(strings.Join(optional, "\n"))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nExample Call:\n  %s\n", exampleCall(def))
	for _, pname := range propertyNames(params.Properties) {
		if bound, ok := limits[def.Name][pname]; ok {
			fmt.Fprintf(&b, "\nNote: %s is capped at a maximum of %d.\n", pname, bound)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// exampleCall renders "<name>(<json args>)" with synthesized arguments.
// json.Marshal sorts object keys, so the rendering is stable.
func exampleCall(def *Definition) string {
	args := ExampleValue(def.Parameters, def.Name)
	data, err := json.Marshal(args)
	if err != nil {
		data = []byte("{}")
	}
	return fmt.Sprintf("%s(%s)", def.Name, data)
}
