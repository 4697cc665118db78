package brief

import (
	"fmt"
	"strings"
	"time"

	"github.com/skillsfirst/briefapi/internal/brief/heuristic"
	"github.com/skillsfirst/briefapi/internal/brief/summarize"
	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

// BuildBrief runs the summarizer and every pattern extractor over the
// normalized text and merges their outputs into one Brief record.
func BuildBrief(s summarize.Summarizer, text string) briefModel.Brief {
	summary := s.Summarize(text, config.MaxSummarySentences)
	keyPoints := heuristic.KeyPoints(text, config.KeyPointsTop)
	hitLines, dates := heuristic.Deadlines(text)
	requirements := heuristic.Requirements(text)
	return Assemble(summary, keyPoints, hitLines, dates, requirements)
}

// Assemble combines already-computed pipeline outputs. Deadlines prefer the
// parsed date list; when nothing parsed, the first few keyword hit lines
// stand in.
func Assemble(summary string, keyPoints, hitLines, dates, requirements []string) briefModel.Brief {
	deadlines := dates
	if len(deadlines) == 0 {
		deadlines = hitLines
		if len(deadlines) > config.DeadlineLinesCap {
			deadlines = deadlines[:config.DeadlineLinesCap]
		}
	}
	if strings.TrimSpace(summary) == "" {
		summary = "Not enough content to summarize."
	}
	return briefModel.Brief{
		ExecutiveSummary: summary,
		KeyPoints:        keyPoints,
		Deadlines:        deadlines,
		Requirements:     requirements,
		NextSteps:        NextSteps(requirements, dates),
	}
}

// NextSteps proposes actions from the extracted deadlines and requirements:
// conditional steps first, then three fixed generic steps, deduplicated
// exactly and capped. Generic steps can be evicted when conditional steps
// fill the cap; that ordering is intentional.
func NextSteps(requirements []string, formattedDates []string) []string {
	var steps []string
	if len(formattedDates) > 0 {
		named := formattedDates
		if len(named) > 3 {
			named = named[:3]
		}
		steps = append(steps, fmt.Sprintf("Add key date(s) to calendar: %s.", strings.Join(named, ", ")))
	}
	if len(requirements) > 0 {
		steps = append(steps, "Gather required documents/items listed above and upload 48 hours before the deadline.")
	}
	steps = append(steps,
		"Email teacher/admin with any clarifying questions (limit to 3 bullets).",
		"Confirm submission method (portal, email, or printed copy) and save the confirmation.",
		"Schedule a 15-minute review with your child/team to align on what success looks like.",
	)

	seen := make(map[string]bool)
	var final []string
	for _, step := range steps {
		if seen[step] {
			continue
		}
		seen[step] = true
		final = append(final, step)
	}
	if len(final) > config.NextStepsCap {
		final = final[:config.NextStepsCap]
	}
	return final
}

// RenderMarkdown renders the brief as a one-page Markdown document with the
// five sections in fixed order.
func RenderMarkdown(b briefModel.Brief, sourceName string) string {
	ts := time.Now().Format("2006-01-02 15:04")
	md := []string{fmt.Sprintf("# 1-Page Action Brief\n*Source:* **%s**  \n*Generated:* %s\n", sourceName, ts)}

	for _, section := range briefModel.SectionOrder {
		md = append(md, "## "+section)
		switch section {
		case "Executive Summary":
			if strings.TrimSpace(b.ExecutiveSummary) == "" {
				md = append(md, "_None found._")
			} else {
				md = append(md, b.ExecutiveSummary)
			}
		case "Key Points":
			md = append(md, renderList(b.KeyPoints)...)
		case "Deadlines":
			md = append(md, renderList(b.Deadlines)...)
		case "Requirements":
			md = append(md, renderList(b.Requirements)...)
		case "Next Steps":
			md = append(md, renderList(b.NextSteps)...)
		}
		md = append(md, "")
	}
	return strings.Join(md, "\n")
}

func renderList(items []string) []string {
	if len(items) == 0 {
		return []string{"_None found._"}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, "- "+item)
	}
	return out
}
