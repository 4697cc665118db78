package summarize

import (
	"strings"
)

// Chunked is the long-document guard: text over Limit chars is split into
// roughly Limit-sized chunks at the best available separator, each chunk is
// summarized independently, and a second pass summarizes the joined chunk
// summaries. Keeps the cost of one summarization call bounded regardless of
// total document length.
type Chunked struct {
	Inner Summarizer
	Limit int
}

func (c Chunked) Summarize(text string, maxSentences int) string {
	text = strings.TrimSpace(text)
	if len(text) <= c.Limit || c.Limit <= 0 {
		return c.Inner.Summarize(text, maxSentences)
	}

	var summaries []string
	for _, chunk := range splitIntoChunks(text, c.Limit) {
		if s := strings.TrimSpace(c.Inner.Summarize(chunk, maxSentences)); s != "" {
			summaries = append(summaries, s)
		}
	}
	return c.Inner.Summarize(strings.Join(summaries, " "), maxSentences)
}

// splitIntoChunks cuts text into pieces no longer than limit, preferring the
// most meaningful separator present.
func splitIntoChunks(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	// Separators ordered from "best" to "worst" for semantic meaning
	separators := []string{"\n\n", "\n", ". ", " "}

	splitChar := ""
	for _, s := range separators {
		if strings.Contains(text, s) {
			splitChar = s
			break
		}
	}
	if splitChar == "" {
		// Hard cut if no separator found (rare)
		var chunks []string
		for len(text) > limit {
			chunks = append(chunks, text[:limit])
			text = text[limit:]
		}
		if text != "" {
			chunks = append(chunks, text)
		}
		return chunks
	}

	var chunks []string
	var currentChunk strings.Builder
	for _, part := range strings.Split(text, splitChar) {
		if currentChunk.Len()+len(part)+len(splitChar) > limit && currentChunk.Len() > 0 {
			chunks = append(chunks, currentChunk.String())
			currentChunk.Reset()
		}
		if currentChunk.Len() > 0 {
			currentChunk.WriteString(splitChar)
		}
		currentChunk.WriteString(part)
	}
	if currentChunk.Len() > 0 {
		chunks = append(chunks, currentChunk.String())
	}
	return chunks
}
