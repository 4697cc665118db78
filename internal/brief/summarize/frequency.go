package summarize

import (
	"math"
	"sort"
	"strings"

	"github.com/skillsfirst/briefapi/internal/brief/textutil"
	"github.com/skillsfirst/briefapi/internal/config"
)

// Frequency is the deterministic extractive strategy: sentences are scored
// by summed normalized term frequencies with a length-regularization
// multiplier favoring sentences near the ideal token count, and the top
// selection is re-ordered back into source order. Identical input always
// yields identical output.
type Frequency struct{}

type scoredSentence struct {
	index    int
	sentence string
	score    float64
}

func (Frequency) Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = config.MaxSummarySentences
	}
	sentences := textutil.SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	tokens := textutil.Tokenize(text)
	if len(tokens) == 0 {
		// degenerate but not an error: punctuation-only documents
		return " "
	}

	weights := termWeights(tokens)
	if len(weights) == 0 {
		// every token was a stopword or too short - first N in order
		return strings.Join(firstN(sentences, maxSentences), " ")
	}

	ranked := make([]scoredSentence, 0, len(sentences))
	for i, sentence := range sentences {
		sentenceTokens := textutil.Tokenize(sentence)
		if len(sentenceTokens) == 0 {
			continue
		}
		var raw float64
		for _, token := range sentenceTokens {
			raw += weights[token] //unknown and filtered tokens contribute 0
		}
		deviation := math.Abs(float64(len(sentenceTokens)-config.IdealSentenceTokens)) / 25.0
		penalty := 1.0 - math.Min(0.6, deviation)
		ranked = append(ranked, scoredSentence{
			index:    i,
			sentence: sentence,
			score:    raw * (0.4 + 0.6*penalty),
		})
	}

	//stable keeps source order among equal scores
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxSentences {
		ranked = ranked[:maxSentences]
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].index < ranked[j].index })

	parts := make([]string, 0, len(ranked))
	for _, s := range ranked {
		parts = append(parts, s.sentence)
	}
	return strings.Join(parts, " ")
}

// termWeights builds the term-frequency table: lowercase tokens longer than
// 2 chars that are not stopwords, each weighted by count/maxCount.
func termWeights(tokens []string) map[string]float64 {
	counts := make(map[string]int)
	max := 0
	for _, token := range tokens {
		if len(token) <= 2 || textutil.IsStopword(token) {
			continue
		}
		counts[token]++
		if counts[token] > max {
			max = counts[token]
		}
	}
	weights := make(map[string]float64, len(counts))
	for token, count := range counts {
		weights[token] = float64(count) / float64(max)
	}
	return weights
}

func firstN(sentences []string, n int) []string {
	if n > len(sentences) {
		n = len(sentences)
	}
	return sentences[:n]
}
