package receipt

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsfirst/briefapi/internal/domain/briefModel"
)

func TestBuildRow(t *testing.T) {
	row := BuildRow("flyer.pdf", "Dana", "parent", "dana@example.com",
		[]string{"Deadline management", "Budget planning"}, "photo of form")

	assert.Equal(t, "flyer.pdf", row.DocumentName)
	assert.Equal(t, "Deadline management; Budget planning", row.Skills)
	assert.False(t, row.Timestamp.IsZero())
}

func TestMergeSkills(t *testing.T) {
	t.Run("union keeps first-seen order", func(t *testing.T) {
		got := MergeSkills([]string{"Summarization", "Action planning"}, []string{"Grant writing", "Summarization"})
		require.Equal(t, []string{"Summarization", "Action planning", "Grant writing"}, got)
	})

	t.Run("dedup is case-insensitive", func(t *testing.T) {
		got := MergeSkills([]string{"Budget planning"}, []string{"budget PLANNING"})
		require.Equal(t, []string{"Budget planning"}, got)
	})

	t.Run("blank labels dropped", func(t *testing.T) {
		got := MergeSkills([]string{"  ", ""}, []string{" Records management "})
		require.Equal(t, []string{"Records management"}, got)
	})
}

func TestRenderCSV(t *testing.T) {
	row := BuildRow("flyer.pdf", "Dana", "parent", "", []string{"Summarization"}, "")
	out := RenderCSV(row)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(briefModel.FieldNames, ","), lines[0])
	assert.Contains(t, lines[1], "flyer.pdf")
	assert.Contains(t, lines[1], "Summarization")
}

func TestRenderMarkdown_ProofOptional(t *testing.T) {
	withProof := RenderMarkdown(BuildRow("a.pdf", "Dana", "", "", nil, "see attachment"))
	assert.Contains(t, withProof, "**Proof:**")

	withoutProof := RenderMarkdown(BuildRow("a.pdf", "Dana", "", "", nil, ""))
	assert.NotContains(t, withoutProof, "**Proof:**")
}

func TestBundle(t *testing.T) {
	row := BuildRow("flyer.pdf", "Dana", "parent", "", []string{"Summarization"}, "")

	t.Run("without proof has two entries", func(t *testing.T) {
		data, err := Bundle(row, "", nil)
		require.NoError(t, err)

		names := zipEntryNames(t, data)
		require.Equal(t, []string{"receipt.csv", "receipt.md"}, names)
	})

	t.Run("with proof has three entries", func(t *testing.T) {
		data, err := Bundle(row, "uploads/evidence.png", []byte{0x89, 0x50})
		require.NoError(t, err)

		names := zipEntryNames(t, data)
		require.Len(t, names, 3)
		assert.Contains(t, names, "proof/evidence.png")
	})

	t.Run("unusable proof name falls back", func(t *testing.T) {
		data, err := Bundle(row, "", []byte("x"))
		require.NoError(t, err)

		names := zipEntryNames(t, data)
		assert.Contains(t, names, "proof/attachment")
	})
}

func zipEntryNames(t *testing.T, data []byte) []string {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}
