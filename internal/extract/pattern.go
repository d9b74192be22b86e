package extract

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled extraction pattern.
type Pattern struct {
	Label string
	Group int
	re    *regexp.Regexp
}

// Extractor applies an ordered set of labeled patterns to document text.
// Patterns are applied independently; overlapping matches are accepted and
// left for the assembler to reconcile.
type Extractor struct {
	patterns []Pattern
}

// Compile validates and compiles a list of pattern definitions. A malformed
// expression or an out-of-range group index is rejected with a PatternError
// identifying the offending definition.
func Compile(defs []PatternDef) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(defs))
	for _, def := range defs {
		if def.Label == "" {
			return nil, &PatternError{Label: def.Label, Expr: def.Expr,
				Err: fmt.Errorf("label cannot be empty")}
		}
		re, err := regexp.Compile(def.Expr)
		if err != nil {
			return nil, &PatternError{Label: def.Label, Expr: def.Expr, Err: err}
		}
		if def.Group < 0 || def.Group > re.NumSubexp() {
			return nil, &PatternError{Label: def.Label, Expr: def.Expr,
				Err: fmt.Errorf("group %d out of range (pattern has %d groups)",
					def.Group, re.NumSubexp())}
		}
		patterns = append(patterns, Pattern{Label: def.Label, Group: def.Group, re: re})
	}
	return patterns, nil
}

// NewExtractor creates an extractor from compiled patterns. An empty pattern
// list is allowed and yields no matches.
func NewExtractor(patterns []Pattern) *Extractor {
	return &Extractor{patterns: patterns}
}

// Apply runs every pattern over the text and returns all matches in
// pattern-list order, then by first occurrence within the text. Text must be
// non-empty; patterns that match nothing simply contribute no matches.
func (e *Extractor) Apply(text string) ([]Match, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	var matches []Match
	for _, p := range e.patterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			// loc[2g] is -1 when an optional group did not participate.
			gs, ge := loc[2*p.Group], loc[2*p.Group+1]
			if gs < 0 {
				continue
			}
			matches = append(matches, Match{
				Label: p.Label,
				Start: loc[0],
				End:   loc[1],
				Value: text[gs:ge],
			})
		}
	}
	return matches, nil
}

// Unmatched returns the labels of patterns that produced no match, preserving
// pattern-list order. Duplicate labels are reported once.
func (e *Extractor) Unmatched(matches []Match) []string {
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		seen[m.Label] = true
	}

	var unmatched []string
	reported := make(map[string]bool)
	for _, p := range e.patterns {
		if !seen[p.Label] && !reported[p.Label] {
			unmatched = append(unmatched, p.Label)
			reported[p.Label] = true
		}
	}
	return unmatched
}
