package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// EmptyInputSummary is returned for blank input without calling the backend.
const EmptyInputSummary = "No text provided for summarization."

// Summarize splits text into chunks, summarizes every chunk long enough to be
// worth it and joins the results with a space.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return EmptyInputSummary, nil
	}

	chunks := splitChunks(text, s.maxChunkLength)
	s.logger.Debug(ctx, "Split transcript into %d chunks", len(chunks))

	var summaries []string
	for i, chunk := range chunks {
		if utf8.RuneCountInString(strings.TrimSpace(chunk)) <= s.minChunkLength {
			s.logger.Debug(ctx, "Skipping short chunk %d/%d", i+1, len(chunks))
			continue
		}

		s.logger.Info(ctx, "[%d/%d] Summarizing chunk", i+1, len(chunks))
		summary, err := s.backend.Summarize(ctx, chunk, s.limits)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d: %w", i+1, err)
		}
		summaries = append(summaries, strings.TrimSpace(summary))
	}

	return strings.Join(summaries, " "), nil
}

// splitChunks groups whitespace separated words into chunks of roughly
// maxLen characters. Each word counts its length plus one separator, except
// the word that opens a new chunk, which counts only its length.
func splitChunks(text string, maxLen int) []string {
	var (
		chunks  []string
		current []string
		length  int
	)

	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		length += n + 1
		if length > maxLen {
			chunks = append(chunks, strings.Join(current, " "))
			current = []string{word}
			length = n
			continue
		}
		current = append(current, word)
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}
