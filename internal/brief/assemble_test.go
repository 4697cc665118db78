package brief

import (
	"strings"
	"testing"

	"github.com/skillsfirst/briefapi/internal/brief/summarize"
	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

const flyerText = `Spring Science Fair Registration

Parents must submit the consent form by March 3, 2025 to reserve a table.
- Must provide proof of residency with the application
- Return the signed waiver no later than 2025-02-20
Projects are judged on creativity, rigor, and presentation by a volunteer panel of local scientists.
Email the front office with questions about setup times or electrical access.`

func TestBuildBrief_EndToEnd(t *testing.T) {
	b := BuildBrief(summarize.New("frequency"), flyerText)

	t.Run("deadlines prefer parsed dates", func(t *testing.T) {
		if len(b.Deadlines) != 2 {
			t.Fatalf("expected 2 deadlines, got %v", b.Deadlines)
		}
		if b.Deadlines[0] != "Feb 20, 2025" || b.Deadlines[1] != "Mar 03, 2025" {
			t.Errorf("deadlines not sorted/formatted: %v", b.Deadlines)
		}
	})

	t.Run("requirements extracted", func(t *testing.T) {
		if len(b.Requirements) == 0 {
			t.Fatal("expected requirements")
		}
		for _, r := range b.Requirements {
			if strings.HasPrefix(r, "-") || strings.HasPrefix(r, "*") {
				t.Errorf("bullet marker not stripped: %q", r)
			}
		}
	})

	t.Run("summary is non-empty", func(t *testing.T) {
		if strings.TrimSpace(b.ExecutiveSummary) == "" {
			t.Error("expected a summary")
		}
	})

	t.Run("next steps reference the dates", func(t *testing.T) {
		if len(b.NextSteps) == 0 || !strings.Contains(b.NextSteps[0], "Feb 20, 2025") {
			t.Errorf("first step should name the calendar dates: %v", b.NextSteps)
		}
	})
}

func TestAssemble_EmptyInputs(t *testing.T) {
	b := Assemble("", nil, nil, nil, nil)

	if b.ExecutiveSummary != "Not enough content to summarize." {
		t.Errorf("unexpected summary placeholder: %q", b.ExecutiveSummary)
	}
	if len(b.Deadlines) != 0 {
		t.Errorf("expected no deadlines, got %v", b.Deadlines)
	}
	// only the three generic steps remain
	if len(b.NextSteps) != 3 {
		t.Errorf("expected 3 generic steps, got %v", b.NextSteps)
	}
}

func TestAssemble_HitLinesStandInForDates(t *testing.T) {
	hitLines := []string{"due line 1", "due line 2", "due line 3", "due line 4"}
	b := Assemble("s", nil, hitLines, nil, nil)
	if len(b.Deadlines) != 3 {
		t.Errorf("expected hit lines capped at 3, got %v", b.Deadlines)
	}
}

func TestNextSteps(t *testing.T) {
	t.Run("cap evicts generic steps", func(t *testing.T) {
		steps := NextSteps([]string{"req"}, []string{"Jan 01, 2026"})
		if len(steps) != 5 {
			t.Fatalf("expected 5 steps, got %d: %v", len(steps), steps)
		}
		if !strings.Contains(steps[0], "Jan 01, 2026") {
			t.Errorf("calendar step should come first: %v", steps)
		}
	})

	t.Run("at most three dates named", func(t *testing.T) {
		dates := []string{"Jan 01, 2026", "Feb 01, 2026", "Mar 01, 2026", "Apr 01, 2026"}
		steps := NextSteps(nil, dates)
		if strings.Contains(steps[0], "Apr 01, 2026") {
			t.Errorf("fourth date should not be named: %q", steps[0])
		}
	})

	t.Run("no dates no requirements", func(t *testing.T) {
		steps := NextSteps(nil, nil)
		if len(steps) != 3 {
			t.Errorf("expected only the generic steps, got %v", steps)
		}
	})
}

func TestRenderMarkdown(t *testing.T) {
	b := briefModel.Brief{
		ExecutiveSummary: "A short summary.",
		KeyPoints:        []string{"point one"},
		NextSteps:        []string{"do the thing"},
	}
	md := RenderMarkdown(b, "flyer.pdf")

	for _, section := range briefModel.SectionOrder {
		if !strings.Contains(md, "## "+section) {
			t.Errorf("missing section header %q", section)
		}
	}
	if !strings.Contains(md, "**flyer.pdf**") {
		t.Error("source name missing from header")
	}
	if !strings.Contains(md, "- point one") {
		t.Error("key point not rendered as a list item")
	}
	// empty sections render the placeholder
	if strings.Count(md, "_None found._") != 2 {
		t.Errorf("expected placeholders for the 2 empty sections:\n%s", md)
	}
}
