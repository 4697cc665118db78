package summarize

import (
	"strings"
	"testing"
)

func TestFrequency_EmptyInput(t *testing.T) {
	if got := (Frequency{}).Summarize("", 5); got != "" {
		t.Errorf("expected empty summary for empty input, got %q", got)
	}
}

func TestFrequency_PunctuationOnly(t *testing.T) {
	// sentences exist but no word tokens survive
	if got := (Frequency{}).Summarize("... !!! ???", 5); got != " " {
		t.Errorf("expected single-space summary, got %q", got)
	}
}

func TestFrequency_StopwordOnlyFallsBackToFirstN(t *testing.T) {
	text := "The and of. It is a. Be or not."
	got := (Frequency{}).Summarize(text, 2)
	expected := "The and of. It is a."
	if got != expected {
		t.Errorf("Summarize = %q; want %q", got, expected)
	}
}

func TestFrequency_SelectionKeepsSourceOrder(t *testing.T) {
	text := "Filler sentence about nothing relevant here. " +
		"The consent form deadline matters because the consent form gates registration. " +
		"Another filler sentence about the weather today. " +
		"Families return the consent form before the deadline to keep their spot."
	got := (Frequency{}).Summarize(text, 2)

	first := strings.Index(got, "consent form gates registration")
	second := strings.Index(got, "keep their spot")
	if first == -1 || second == -1 {
		t.Fatalf("expected the two keyword-heavy sentences, got %q", got)
	}
	if first > second {
		t.Errorf("selected sentences are not in source order: %q", got)
	}
}

func TestFrequency_Deterministic(t *testing.T) {
	text := "Submit the form by Friday. Bring proof of residency. The workshop covers budget planning. Contact the office with questions."
	a := (Frequency{}).Summarize(text, 2)
	b := (Frequency{}).Summarize(text, 2)
	if a != b {
		t.Errorf("same input produced different summaries: %q vs %q", a, b)
	}
}

func TestFrequency_CapsAtMaxSentences(t *testing.T) {
	text := "Alpha registration opens soon. Beta registration needs documents. Gamma registration costs money. Delta registration closes Friday."
	got := (Frequency{}).Summarize(text, 2)
	if n := len(strings.Split(got, ". ")); n > 2 {
		t.Errorf("expected at most 2 sentences, got %d: %q", n, got)
	}
}

func TestChunked_ShortTextPassesThrough(t *testing.T) {
	c := Chunked{Inner: Frequency{}, Limit: 8000}
	text := "Submit the form by Friday. Bring proof of residency."
	if got, want := c.Summarize(text, 5), (Frequency{}).Summarize(text, 5); got != want {
		t.Errorf("short text should not be chunked: %q vs %q", got, want)
	}
}

func TestChunked_LongTextStillSummarizes(t *testing.T) {
	sentence := "The program requires a signed consent form before the stated deadline. "
	long := strings.Repeat(sentence, 300) // well past an 800-char limit
	c := Chunked{Inner: Frequency{}, Limit: 800}
	got := c.Summarize(long, 3)
	if strings.TrimSpace(got) == "" {
		t.Fatal("expected a non-empty summary for a long document")
	}
	if len(got) >= len(long) {
		t.Errorf("summary is not shorter than the input: %d chars", len(got))
	}
}

func TestSplitIntoChunks(t *testing.T) {
	t.Run("under limit is one chunk", func(t *testing.T) {
		chunks := splitIntoChunks("short", 100)
		if len(chunks) != 1 || chunks[0] != "short" {
			t.Errorf("got %v", chunks)
		}
	})

	t.Run("splits at best separator", func(t *testing.T) {
		text := strings.Repeat("para one text here\n\n", 20)
		chunks := splitIntoChunks(strings.TrimSpace(text), 100)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		for i, c := range chunks {
			if len(c) > 100 {
				t.Errorf("chunk %d exceeds limit: %d chars", i, len(c))
			}
		}
	})

	t.Run("hard cut without separators", func(t *testing.T) {
		chunks := splitIntoChunks(strings.Repeat("x", 250), 100)
		if len(chunks) != 3 {
			t.Errorf("expected 3 chunks, got %d", len(chunks))
		}
	})
}

func TestNew_UnknownStrategyDefaultsToFrequency(t *testing.T) {
	s := New("nonsense")
	c, ok := s.(Chunked)
	if !ok {
		t.Fatalf("expected Chunked wrapper, got %T", s)
	}
	if _, ok := c.Inner.(Frequency); !ok {
		t.Errorf("expected Frequency inner strategy, got %T", c.Inner)
	}
}
