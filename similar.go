package toolcheck

import (
	"slices"
	"strings"
	"unicode"
)

// Similarity scoring weights. The score is additive over independent
// signals; partial scores are capped just below the exact-match ceiling so
// an exact full-name match always ranks strictly first.
const (
	scoreExactMatch    = 100
	scoreNameSubstring = 40
	scoreDescSubstring = 15
	scoreSharedWord    = 15
	scorePrefixPerChar = 2
	minPrefixLen       = 3

	// autoCorrectScore is the minimum score at which ValidateCall silently
	// substitutes the top candidate for an unresolvable name. A single
	// shared word (15) is deliberately not enough on its own; a shared word
	// plus a common prefix of at least 3 characters is.
	autoCorrectScore = 25

	defaultSuggestionLimit = 5
)

// FindSimilarTools returns up to limit registered tool names ranked by
// relevance to query, best first. Zero matches yields an empty list, never
// an error. limit <= 0 means the default of 5.
//
// Meta-tools (names containing the whole word "tool" or "tools") are
// filtered out: recommending "use a tool to find a tool" is never a useful
// correction.
func FindSimilarTools(reg Registry, query string, limit int) []string {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	ranked := rankTools(reg, query)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.name
	}
	return names
}

type candidate struct {
	name  string
	score int
}

// rankTools scores every registered tool against query and returns the
// positive-scoring candidates sorted by score descending, name ascending on
// ties.
func rankTools(reg Registry, query string) []candidate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	qWords := splitWords(q)
	var out []candidate
	for _, def := range reg.GetDefinitions() {
		name := strings.ToLower(def.Name)
		if isMetaTool(name) {
			continue
		}
		score := similarityScore(q, qWords, name, strings.ToLower(def.Description))
		if score <= 0 {
			continue
		}
		out = append(out, candidate{name: def.Name, score: score})
	}
	slices.SortStableFunc(out, func(a, b candidate) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return strings.Compare(a.name, b.name)
	})
	return out
}

func similarityScore(q string, qWords []string, name, desc string) int {
	if q == name {
		return scoreExactMatch
	}
	score := 0
	if strings.Contains(name, q) || strings.Contains(q, name) {
		score += scoreNameSubstring
	}
	if desc != "" && strings.Contains(desc, q) {
		score += scoreDescSubstring
	}
	nameWords := splitWords(name)
	for _, w := range qWords {
		if slices.Contains(nameWords, w) {
			score += scoreSharedWord
		}
	}
	// Length-scaled prefix bonus doubles as the tie-break between
	// candidates sharing the same words: the longer the common prefix, the
	// closer the misspelling.
	if p := commonPrefixLen(q, name); p >= minPrefixLen {
		score += p * scorePrefixPerChar
	}
	if score >= scoreExactMatch {
		score = scoreExactMatch - 1
	}
	return score
}

// splitWords splits on every non-alphanumeric rune, so "send-email",
// "send_email", and "send email" all share the words {send, email}.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// isMetaTool reports whether a lowercase tool name is about tools in
// general (tool search, tool docs, tool use).
func isMetaTool(name string) bool {
	for _, w := range splitWords(name) {
		if w == "tool" || w == "tools" {
			return true
		}
	}
	return false
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
