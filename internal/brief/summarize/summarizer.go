package summarize

import "github.com/skillsfirst/briefapi/internal/config"

// Summarizer is the polymorphic summarization capability. Implementations
// may use a statistical or a library-backed strategy; callers never care
// which. Every implementation returns sentences in source order.
type Summarizer interface {
	Summarize(text string, maxSentences int) string
}

// New returns the configured strategy wrapped in the long-document
// chunking guard.
func New(strategy string) Summarizer {
	var inner Summarizer
	switch strategy {
	case "textrank":
		inner = TextRank{}
	default:
		inner = Frequency{}
	}
	return Chunked{Inner: inner, Limit: config.SummaryChunkLimit}
}
