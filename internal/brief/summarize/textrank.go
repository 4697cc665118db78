package summarize

import (
	"sort"
	"strings"

	textrank "github.com/DavidBelicza/TextRank/v2"
)

// TextRank is the library-backed extractive strategy. Selection is re-sorted
// into source order so the summary never reads out of sequence, matching the
// Frequency strategy's guarantee.
type TextRank struct{}

func (TextRank) Summarize(text string, maxSentences int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	tr := textrank.NewTextRank()
	tr.Populate(text, textrank.NewDefaultLanguage(), textrank.NewDefaultRule())
	tr.Ranking(textrank.NewDefaultAlgorithm())

	picked := textrank.FindSentencesByRelationWeight(tr, maxSentences)
	if len(picked) == 0 {
		// graphs with too few relations rank nothing - degrade to the
		// deterministic strategy rather than returning an empty summary
		return Frequency{}.Summarize(text, maxSentences)
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].ID < picked[j].ID })

	parts := make([]string, 0, len(picked))
	for _, s := range picked {
		if v := strings.TrimSpace(s.Value); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
