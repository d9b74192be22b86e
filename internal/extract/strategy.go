package extract

import "context"

// Strategy produces records from document text. The rule-based pipeline and
// the AI-assisted pipeline both implement it; they share the assembler's
// ordering, deduplication, and indexing policy.
type Strategy interface {
	// Extract runs the strategy over the full document text. The text is
	// never mutated; implementations must be safe to abandon on context
	// cancellation without leaking partial state.
	Extract(ctx context.Context, text string) (*Result, error)
	// Name identifies the strategy for logging and tool output.
	Name() string
}

// Rules is the deterministic pattern-matching strategy: extractor, context
// locator, and assembler chained over immutable text.
type Rules struct {
	extractor *Extractor
	locator   *Locator
}

// NewRules builds the rule strategy from compiled patterns and a context
// look-around window.
func NewRules(patterns []Pattern, window int) *Rules {
	return &Rules{
		extractor: NewExtractor(patterns),
		locator:   NewLocator(window),
	}
}

// Name returns the strategy identifier used in configuration and tools.
func (r *Rules) Name() string {
	return "rules"
}

// Extract applies every pattern, locates a comment sentence for each match,
// and assembles the ordered, deduplicated records. Patterns that matched
// zero times are reported in the result's Unmatched list.
func (r *Rules) Extract(ctx context.Context, text string) (*Result, error) {
	matches, err := r.extractor.Apply(text)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(matches))
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{
			Match:   m,
			Comment: r.locator.Sentence(text, m.Start),
		})
	}

	return &Result{
		Records:   Assemble(pairs),
		Unmatched: r.extractor.Unmatched(matches),
	}, nil
}
