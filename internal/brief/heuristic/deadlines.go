package heuristic

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	deadlineLinePattern = regexp.MustCompile(`(?i)\b(deadline|due|submit by|no later than)\b`)

	// numeric D/M/Y, month-name "Month D, YYYY", and ISO YYYY-M-D forms
	datePattern = regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|[A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4}|\d{4}-\d{1,2}-\d{1,2})\b`)
)

// Deadlines computes two independent signals over the text: lines containing
// a whole-word deadline keyword, and every date-like substring that parses
// to a calendar date. Unparsable matches are silently dropped - false
// positives are expected here. Parsed dates come back deduplicated by
// calendar day, sorted ascending and formatted "Jan 02, 2006". When no
// dates parse, callers fall back to the hit lines.
func Deadlines(text string) (hitLines []string, formatted []string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if deadlineLinePattern.MatchString(line) {
			hitLines = append(hitLines, line)
		}
	}

	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, match := range datePattern.FindAllString(text, -1) {
		parsed, err := dateparse.ParseAny(match)
		if err != nil {
			continue
		}
		day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, day := range days {
		formatted = append(formatted, day.Format("Jan 02, 2006"))
	}
	return hitLines, formatted
}
