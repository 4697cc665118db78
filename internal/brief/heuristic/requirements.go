package heuristic

import (
	"regexp"
	"strings"

	"github.com/skillsfirst/briefapi/internal/config"
)

var (
	bulletPattern      = regexp.MustCompile(`^(\*|-|•|\d+\.)\s+`)
	bulletStripPattern = regexp.MustCompile(`^(\*|-|•|\d+\.)\s*`)
	obligationPattern  = regexp.MustCompile(`(?i)\b(must|required?|need to|provide|eligib\w*|documentation|proof|return|submit)\b`)
)

// Requirements returns the lines that read like obligations: bullet or
// numbered list items, or short lines, containing an obligation keyword.
// Leading list markers are stripped. Deduplicated case-insensitively with
// first occurrence winning; the cap is a display constraint.
func Requirements(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		if !bulletPattern.MatchString(clean) && len(clean) >= 220 {
			continue
		}
		if !obligationPattern.MatchString(clean) {
			continue
		}
		stripped := bulletStripPattern.ReplaceAllString(clean, "")
		key := strings.ToLower(stripped)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, stripped)
		if len(out) == config.RequirementsCap {
			break
		}
	}
	return out
}
