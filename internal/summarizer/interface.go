package summarizer

import "context"

// Summarizer condenses a transcript into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Limits bounds the length of a single chunk summary, in words.
type Limits struct {
	MaxLength int
	MinLength int
}

// Backend summarizes one chunk of text.
type Backend interface {
	Summarize(ctx context.Context, chunk string, limits Limits) (string, error)
}
