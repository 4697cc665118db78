package textutil

import (
	"regexp"
	"strings"
)

var (
	newlineRuns    = regexp.MustCompile(`\n{3,}`)
	horizontalRuns = regexp.MustCompile(`[ \t]{2,}`)
)

// Normalize cleans raw extracted text: NUL bytes become spaces, leading and
// trailing whitespace is trimmed, runs of 3+ newlines collapse to 2 and runs
// of 2+ horizontal whitespace collapse to a single space. Sentence
// boundaries are never altered. Pure function; empty in means empty out.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\x00", " ")
	text = strings.TrimSpace(text)
	text = newlineRuns.ReplaceAllString(text, "\n\n")
	text = horizontalRuns.ReplaceAllString(text, " ")
	return text
}
