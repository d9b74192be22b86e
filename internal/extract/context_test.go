package extract

import (
	"strings"
	"testing"
)

func TestSentenceMiddleOfText(t *testing.T) {
	text := "First sentence here. Second sentence with the match. Third sentence."
	locator := NewLocator(0)

	start := strings.Index(text, "match")
	got := locator.Sentence(text, start)
	want := "Second sentence with the match."
	if got != want {
		t.Errorf("Sentence() = %q, want %q", got, want)
	}
}

func TestSentenceFirstSentence(t *testing.T) {
	text := "The match is right here. Another sentence follows."
	locator := NewLocator(0)

	got := locator.Sentence(text, 4)
	want := "The match is right here."
	if got != want {
		t.Errorf("Sentence() = %q, want %q", got, want)
	}
}

func TestSentenceLastSentenceWithoutTerminator(t *testing.T) {
	text := "A complete sentence. Trailing fragment without a period"
	locator := NewLocator(0)

	start := strings.Index(text, "fragment")
	got := locator.Sentence(text, start)
	want := "Trailing fragment without a period"
	if got != want {
		t.Errorf("Sentence() = %q, want %q", got, want)
	}
}

func TestSentenceParagraphBreakBounds(t *testing.T) {
	text := "Heading without punctuation\n\nBody line with the match\n\nNext paragraph"
	locator := NewLocator(0)

	start := strings.Index(text, "match")
	got := locator.Sentence(text, start)
	want := "Body line with the match"
	if got != want {
		t.Errorf("Sentence() = %q, want %q", got, want)
	}
}

func TestSentenceWindowExhaustedReturnsEmpty(t *testing.T) {
	// No boundary anywhere near the offset within a tiny window.
	text := strings.Repeat("x", 200) + " match " + strings.Repeat("y", 200)
	locator := NewLocator(10)

	start := strings.Index(text, "match")
	if got := locator.Sentence(text, start); got != "" {
		t.Errorf("Expected empty comment when window is exhausted, got %q", got)
	}
}

func TestSentenceIsDeterministic(t *testing.T) {
	text := "Vijay Kumar was born on March 15, 1989, in Jaipur. He grew up there."
	locator := NewLocator(0)

	first := locator.Sentence(text, 44)
	for i := 0; i < 5; i++ {
		if got := locator.Sentence(text, 44); got != first {
			t.Fatalf("Sentence() not deterministic: %q vs %q", got, first)
		}
	}
}

func TestSentenceOffsetClamping(t *testing.T) {
	text := "Only one sentence."
	locator := NewLocator(0)

	if got := locator.Sentence(text, -5); got != "Only one sentence." {
		t.Errorf("Sentence(-5) = %q", got)
	}
	if got := locator.Sentence(text, len(text)+10); got != "Only one sentence." {
		t.Errorf("Sentence(past end) = %q", got)
	}
	if got := locator.Sentence("", 0); got != "" {
		t.Errorf("Sentence on empty text = %q", got)
	}
}
