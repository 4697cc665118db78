package heuristic

import (
	"regexp"
	"strings"

	"github.com/skillsfirst/briefapi/internal/config"
)

type skillRule struct {
	pattern *regexp.Regexp
	label   string
}

// Static pattern-to-label table; extending the mapping means adding entries
// here. Loaded once, never mutated at runtime.
var skillTable = []skillRule{
	{regexp.MustCompile(`(?i)\b(deadline|due|no later than)\b`), "Deadline management"},
	{regexp.MustCompile(`(?i)\b(form|application|submit\w*)\b`), "Form completion & submission"},
	{regexp.MustCompile(`(?i)\b(budget|cost|fee|payment)\b`), "Budget planning"},
	{regexp.MustCompile(`(?i)\b(schedule|meeting|workshop|appointment)\b`), "Scheduling & coordination"},
	{regexp.MustCompile(`(?i)\b(email|contact|call|phone)\b`), "Written communication"},
	{regexp.MustCompile(`(?i)\b(proof|documentation|records?)\b`), "Records management"},
	{regexp.MustCompile(`(?i)\b(eligib\w*|qualif\w*)\b`), "Eligibility assessment"},
	{regexp.MustCompile(`(?i)\b(policy|policies|guideline\w*|regulation\w*)\b`), "Policy comprehension"},
	{regexp.MustCompile(`(?i)\b(volunteer\w*|community)\b`), "Community engagement"},
	{regexp.MustCompile(`(?i)\b(consent|permission|waiver)\b`), "Consent & permissions handling"},
	{regexp.MustCompile(`(?i)\b(transport\w*|pickup|drop-?off)\b`), "Logistics planning"},
	{regexp.MustCompile(`(?i)\b(health|medical|immuniz\w*|allerg\w*)\b`), "Health documentation"},
}

// DefaultSkills is returned when no table pattern matches, so the caller
// always has at least one actionable label to offer.
var DefaultSkills = []string{
	"Document comprehension",
	"Summarization",
	"Action planning",
}

// Skills maps the document text plus its extracted requirement lines onto
// normalized skill labels via the fixed keyword table. Order follows table
// iteration order, deduplicated, capped.
func Skills(text string, requirements []string) []string {
	corpus := text + "\n" + strings.Join(requirements, "\n")

	seen := make(map[string]bool)
	var out []string
	for _, rule := range skillTable {
		if !rule.pattern.MatchString(corpus) {
			continue
		}
		if seen[rule.label] {
			continue
		}
		seen[rule.label] = true
		out = append(out, rule.label)
		if len(out) == config.SkillLabelsCap {
			break
		}
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultSkills...)
	}
	return out
}
