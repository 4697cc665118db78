package heuristic

import (
	"strings"

	"github.com/skillsfirst/briefapi/internal/config"
)

// KeyPoints picks candidate lines of a readable length: after stripping
// bullet characters, strictly between 40 and 220 chars and not ending in a
// colon (colon-terminated lines are headers). Deduplicated
// case-insensitively, first topN in source order. A coverage heuristic, not
// a ranked summary.
func KeyPoints(text string, topN int) []string {
	if topN <= 0 {
		topN = config.KeyPointsTop
	}
	seen := make(map[string]bool)
	var out []string
	for _, line := range strings.Split(text, "\n") {
		clean := strings.Trim(line, " -•*\t")
		if len(clean) <= 40 || len(clean) >= 220 || strings.HasSuffix(clean, ":") {
			continue
		}
		key := strings.ToLower(clean)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, clean)
		if len(out) == topN {
			break
		}
	}
	return out
}
