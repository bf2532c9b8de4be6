package toolcheck

import (
	"github.com/sourcegraph/conc"
)

// Checker is the top-level tool-call validator. It composes the schema
// validator and the similarity resolver over a Registry and carries the
// tunables for both. A Checker is immutable after construction and safe for
// concurrent use: every operation is a pure function of its arguments and
// the registry's read view.
type Checker struct {
	reg  Registry
	opts checkerOptions
}

// NewChecker creates a Checker over reg with the given options.
func NewChecker(reg Registry, opts ...Option) *Checker {
	o := checkerOptions{
		maxDepth:        DefaultMaxDepth,
		maxElements:     DefaultMaxElements,
		suggestionLimit: defaultSuggestionLimit,
		correctScore:    autoCorrectScore,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Checker{reg: reg, opts: o}
}

// ValidateCall validates a candidate tool call. The name is looked up
// directly first; on a miss the similarity resolver may adopt a close
// registered name as CorrectedName, and validation then runs against that
// tool's schema. A name that resolves nowhere yields a single NotFound error
// at path "tool_name". All failure modes live in the Result; nothing is
// thrown.
func (c *Checker) ValidateCall(name string, args map[string]any) Result {
	if args == nil {
		// Required-field checks live inside object validation, which needs
		// a value to walk; an absent argument map means an empty one.
		args = map[string]any{}
	}
	if def, ok := c.reg.GetDefinition(name); ok {
		return c.validateAgainst(def, args, "")
	}

	ranked := rankTools(c.reg, name)
	if len(ranked) == 0 || ranked[0].score < c.opts.correctScore {
		return Result{Valid: false, Errors: []ValidationError{notFoundError(name)}}
	}
	corrected := ranked[0].name
	if c.opts.logger != nil {
		c.opts.logger.Debug("auto-corrected tool name",
			"from", name, "to", corrected, "score", ranked[0].score)
	}
	def, ok := c.reg.GetDefinition(corrected)
	if !ok {
		// Registry changed between listing and lookup.
		return Result{Valid: false, Errors: []ValidationError{notFoundError(name)}}
	}
	return c.validateAgainst(def, args, corrected)
}

func (c *Checker) validateAgainst(def *Definition, args map[string]any, corrected string) Result {
	g := guards{maxDepth: c.opts.maxDepth, maxElements: c.opts.maxElements}
	errs := validateValue(args, def.Parameters, "params", 0, g)
	res := Result{
		Valid:         len(errs) == 0,
		Errors:        errs,
		CorrectedName: corrected,
	}
	if !res.Valid {
		res.HelpText = BuildHelpText(def)
	}
	return res
}

// ValidateBatch validates calls concurrently and returns results in input
// order. Validation is pure and the registry view read-only, so the fan-out
// needs no locking.
func (c *Checker) ValidateBatch(calls []ToolCall) []Result {
	if len(calls) == 0 {
		return nil
	}
	if c.opts.logger != nil {
		c.opts.logger.Debug("validating batch", "calls", len(calls))
	}
	results := make([]Result, len(calls))
	var wg conc.WaitGroup
	for i, call := range calls {
		wg.Go(func() {
			results[i] = c.ValidateCall(call.Name, call.Args)
		})
	}
	wg.Wait()
	return results
}

// FindSimilar returns registered tool names ranked by relevance to query,
// best first, truncated to the configured suggestion limit.
func (c *Checker) FindSimilar(query string) []string {
	return FindSimilarTools(c.reg, query, c.opts.suggestionLimit)
}

// CheckRequired runs the presence-only pre-check against this checker's
// registry. See the package-level CheckRequired.
func (c *Checker) CheckRequired(toolName string, args map[string]any) string {
	return CheckRequired(c.reg, toolName, args)
}

// HelpText returns the compact help block for name, or "" when the tool is
// unknown or declares no parameter map.
func (c *Checker) HelpText(name string) string {
	def, ok := c.reg.GetDefinition(name)
	if !ok {
		return ""
	}
	return BuildHelpText(def)
}

// FullHelp returns the sectioned reference for name, rendered with this
// checker's caps table.
func (c *Checker) FullHelp(name string) string {
	return BuildFullHelp(c.reg, name, c.opts.limits)
}
