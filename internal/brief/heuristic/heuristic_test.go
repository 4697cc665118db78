package heuristic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadlines_ParsesAndFormats(t *testing.T) {
	text := "Submit by March 3, 2025.\n" +
		"The make-up session is on 2025-03-03 and payment opens 01/15/2025.\n" +
		"Deadline: rolling admission."

	hitLines, formatted := Deadlines(text)

	// March 3 appears twice in different notations; one calendar day survives
	require.Equal(t, []string{"Jan 15, 2025", "Mar 03, 2025"}, formatted)

	require.Len(t, hitLines, 2)
	assert.Contains(t, hitLines[0], "Submit by")
	assert.Contains(t, hitLines[1], "Deadline")
}

func TestDeadlines_NoDates(t *testing.T) {
	hitLines, formatted := Deadlines("Forms are due at the front office.")
	assert.Empty(t, formatted)
	require.Len(t, hitLines, 1)
}

func TestDeadlines_KeywordIsWholeWord(t *testing.T) {
	// "overdue" and "residue" must not trigger the deadline keyword
	hitLines, _ := Deadlines("The overdue balance and residue remain.")
	assert.Empty(t, hitLines)
}

func TestRequirements_StripsBulletsAndDedups(t *testing.T) {
	text := "- Must bring proof of residency\n" +
		"* Provide two copies of the form\n" +
		"Must bring proof of residency\n" +
		"The sky was clear that afternoon\n"

	got := Requirements(text)
	require.Equal(t, []string{
		"Must bring proof of residency",
		"Provide two copies of the form",
	}, got)
}

func TestRequirements_Idempotent(t *testing.T) {
	first := Requirements("- Must bring proof of residency\n* Provide two copies of the form")
	second := Requirements(strings.Join(first, "\n"))
	require.Equal(t, first, second)
}

func TestRequirements_NumberedLists(t *testing.T) {
	got := Requirements("1. Submit the enrollment form\n2. Return the signed waiver")
	require.Len(t, got, 2)
	assert.Equal(t, "Submit the enrollment form", got[0])
}

func TestRequirements_Cap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "- Must complete checklist item number %d\n", i)
	}
	got := Requirements(b.String())
	assert.Len(t, got, 10)
}

func TestKeyPoints(t *testing.T) {
	text := "Short line\n" +
		"Overview of required materials:\n" +
		"- The spring field trip includes transportation and lunch for every participating student\n" +
		"The spring field trip includes transportation and lunch for every participating student\n" +
		strings.Repeat("x", 240) + "\n" +
		"Families should expect a follow-up email with the final schedule one week out\n"

	got := KeyPoints(text, 6)
	require.Equal(t, []string{
		"The spring field trip includes transportation and lunch for every participating student",
		"Families should expect a follow-up email with the final schedule one week out",
	}, got)
}

func TestKeyPoints_Cap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "A sufficiently descriptive candidate line for the key point list number %d\n", i)
	}
	got := KeyPoints(b.String(), 3)
	assert.Len(t, got, 3)
}

func TestSkills_TableMatches(t *testing.T) {
	text := "Please submit the application form before the deadline. Volunteers welcome."
	got := Skills(text, nil)

	// table order, not match order
	require.Equal(t, []string{
		"Deadline management",
		"Form completion & submission",
		"Community engagement",
	}, got)
}

func TestSkills_RequirementsContribute(t *testing.T) {
	got := Skills("Nothing notable in the body.", []string{"Bring proof of immunization"})
	assert.Contains(t, got, "Records management")
	assert.Contains(t, got, "Health documentation")
}

func TestSkills_DefaultFallback(t *testing.T) {
	got := Skills("An unremarkable announcement.", nil)
	require.Equal(t, DefaultSkills, got)
}
