package extract

import "strings"

// DefaultWindow is the maximum look-around distance, in bytes, when searching
// for a sentence boundary on either side of a match.
const DefaultWindow = 400

// Locator finds the smallest enclosing sentence around a match offset to
// serve as the record's comment. It is a pure function over the text: the
// same (text, offset) always yields the same sentence.
type Locator struct {
	window int
}

// NewLocator creates a locator with the given look-around window. A
// non-positive window selects DefaultWindow.
func NewLocator(window int) *Locator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Locator{window: window}
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// paragraphBreakAt reports whether a blank-line paragraph break sits at i.
func paragraphBreakAt(text string, i int) bool {
	return text[i] == '\n' && i+1 < len(text) && text[i+1] == '\n'
}

// Sentence returns the sentence enclosing the byte offset start, bounded by
// sentence terminators or paragraph breaks. The start and end of the text
// count as boundaries, so a match inside the first or last sentence gets that
// sentence. If no boundary is found within the window on either side, the
// result is empty rather than an arbitrary fragment.
func (l *Locator) Sentence(text string, start int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if start >= len(text) {
		start = len(text) - 1
	}

	begin, ok := l.scanBack(text, start)
	if !ok {
		return ""
	}
	end, ok := l.scanForward(text, start)
	if !ok {
		return ""
	}

	return strings.TrimSpace(text[begin:end])
}

// scanBack finds the offset just after the previous sentence boundary.
func (l *Locator) scanBack(text string, start int) (int, bool) {
	limit := start - l.window
	if limit < 0 {
		limit = 0
	}
	for i := start - 1; i >= limit; i-- {
		if isTerminator(text[i]) || paragraphBreakAt(text, i) {
			return i + 1, true
		}
	}
	// Text start is a boundary only if it lies within the window.
	if limit == 0 {
		return 0, true
	}
	return 0, false
}

// scanForward finds the offset just past the sentence terminator, or just
// before a paragraph break.
func (l *Locator) scanForward(text string, start int) (int, bool) {
	limit := start + l.window
	if limit > len(text) {
		limit = len(text)
	}
	for i := start; i < limit; i++ {
		if isTerminator(text[i]) {
			return i + 1, true
		}
		if paragraphBreakAt(text, i) {
			return i, true
		}
	}
	if limit == len(text) {
		return len(text), true
	}
	return 0, false
}
