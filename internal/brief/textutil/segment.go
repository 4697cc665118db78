package textutil

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// SplitSentences splits text at whitespace that immediately follows a
// terminal punctuation mark. The rule is deliberately crude - abbreviations,
// decimals and quoted punctuation are mis-split and that is accepted; the
// pipeline favors a dependency-free heuristic over a trained tokenizer.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 >= len(text) || !isSpaceByte(text[i+1]) {
			continue
		}
		if frag := strings.TrimSpace(text[start : i+1]); frag != "" {
			sentences = append(sentences, frag)
		}
		start = i + 1
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// Tokenize returns the lowercase word tokens of text: runs of letters and
// apostrophes. Numbers and punctuation are not tokens.
func Tokenize(text string) []string {
	matches := wordPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
