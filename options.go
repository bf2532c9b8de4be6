package toolcheck

import "log/slog"

// checkerOptions hold the Checker tunables (guards, resolver settings, caps
// table, logger).
type checkerOptions struct {
	maxDepth        int
	maxElements     int
	suggestionLimit int
	correctScore    int
	limits          ParamLimits
	logger          *slog.Logger
}

// Option configures a Checker (e.g. WithMaxDepth, WithParamLimits).
type Option func(*checkerOptions)

// WithMaxDepth caps recursion into nested values; deeper input yields a
// SchemaTooComplex error instead of unbounded descent. Pass 0 or negative to
// disable the guard. Default DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *checkerOptions) {
		o.maxDepth = n
	}
}

// WithMaxElements caps list length; longer lists yield a PayloadTooLarge
// error. Pass 0 or negative to disable the guard. Default DefaultMaxElements.
func WithMaxElements(n int) Option {
	return func(o *checkerOptions) {
		o.maxElements = n
	}
}

// WithSuggestionLimit sets how many candidates FindSimilar returns
// (default 5).
func WithSuggestionLimit(n int) Option {
	return func(o *checkerOptions) {
		o.suggestionLimit = n
	}
}

// WithAutoCorrectScore overrides the minimum similarity score at which an
// unresolvable tool name is silently corrected (default 25). Raise it to
// make correction stricter; lower it with care, or the checker will start
// guessing.
func WithAutoCorrectScore(score int) Option {
	return func(o *checkerOptions) {
		o.correctScore = score
	}
}

// WithParamLimits injects the per-tool parameter caps table rendered by
// FullHelp's Note lines.
func WithParamLimits(limits ParamLimits) Option {
	return func(o *checkerOptions) {
		o.limits = limits
	}
}

// WithLogger sets a logger for debug-level reporting of auto-corrections and
// batch sizes. Validation itself never logs; nil (the default) disables.
func WithLogger(logger *slog.Logger) Option {
	return func(o *checkerOptions) {
		o.logger = logger
	}
}
