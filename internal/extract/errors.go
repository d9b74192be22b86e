package extract

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates the document text was empty or unreadable. No
// records are produced and the exporter is not invoked.
var ErrEmptyInput = errors.New("document text is empty")

// PatternError reports an invalid pattern definition. It is raised at
// configuration time, before any extraction begins.
type PatternError struct {
	Label string
	Expr  string
	Err   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q (%s): %v", e.Label, e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
