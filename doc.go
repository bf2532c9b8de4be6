// Package toolcheck validates LLM tool calls before they reach an executor.
//
// # Overview
//
// LLMs emit tool calls as a name plus a JSON-shaped argument map, and they
// routinely get both slightly wrong: misspelled names, missing required
// fields, strings where numbers belong. This package checks a call against
// the declared parameter schema, auto-corrects near-miss tool names, and
// renders deterministic diagnostics (error lists, example calls, help text)
// that let the model fix its own call on the next turn.
//
// Pipeline: Registry (tool definitions) → Checker.ValidateCall (lookup,
// name correction, schema walk) → Result (errors, corrected name, help text)
// → next model turn.
//
// # Key concepts
//
//   - Errors are values: a single call accumulates every independent problem
//     instead of failing fast, so one retry can fix them all.
//   - Self-correction: a name that scores close enough to a registered tool
//     is silently corrected and validation proceeds against that tool.
//   - Single Source of Truth: DefineTool derives the schema from the tool's
//     Go argument struct, so the schema shown to the LLM and the one used
//     for validation never drift.
//
// See Schema, Definition, Result for the core types, and NewChecker /
// DefineTool / NewStaticRegistry for setup.
//
// # Example
//
//	type Args struct {
//		To      string `json:"to" jsonschema:"required"`
//		Subject string `json:"subject" jsonschema:"required"`
//	}
//	def, err := toolcheck.DefineTool[Args]("send_email", "Send an email")
//	if err != nil { ... }
//	reg := toolcheck.NewStaticRegistry(def)
//	checker := toolcheck.NewChecker(reg)
//	res := checker.ValidateCall("send_emal", map[string]any{"to": "a@b.c", "subject": "hi"})
//	// res.Valid == true, res.CorrectedName == "send_email"
package toolcheck
