package extract

// PatternDef describes a single labeled extraction pattern before compilation.
// Expr is a regular expression; Group selects which capture group supplies the
// value (0 means the whole match).
type PatternDef struct {
	Label string `json:"label" mapstructure:"label"`
	Expr  string `json:"expr" mapstructure:"expr"`
	Group int    `json:"group" mapstructure:"group"`
}

// Match is a single successful application of one pattern to the document
// text. Start and End are byte offsets of the full pattern match; Value is
// the captured group text, verbatim from the source.
type Match struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Value string `json:"value"`
}

// Record is the final structured output unit handed to the exporter.
type Record struct {
	Index   int    `json:"index"`
	Key     string `json:"key"`
	Value   string `json:"value"`
	Comment string `json:"comments"`
}

// Result bundles the assembled records with pipeline diagnostics.
type Result struct {
	Records []Record `json:"records"`
	// Unmatched lists labels of patterns that matched zero times. This is
	// informational, not an error.
	Unmatched []string `json:"unmatched,omitempty"`
}
