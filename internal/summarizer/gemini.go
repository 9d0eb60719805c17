package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

// ErrBackendUnavailable is returned when no Gemini API key is configured.
var ErrBackendUnavailable = errors.New("summarization backend unavailable: no Gemini API keys configured")

const summaryPrompt = `Summarize the following meeting transcript excerpt in plain English prose.
Write between %d and %d words. Keep decisions, owners and dates. Do not use markdown.

Transcript:
---
%s
---`

type geminiBackend struct {
	apiKeys    []string
	model      string
	logger     logger.Logger
	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Backend that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Backend, error) {
	if len(apiKeys) == 0 {
		return nil, ErrBackendUnavailable
	}
	return &geminiBackend{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}, nil
}

// Summarize sends one chunk to Gemini. Rotates API keys on 429 / quota errors.
func (g *geminiBackend) Summarize(ctx context.Context, chunk string, limits Limits) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, limits.MinLength, limits.MaxLength, chunk)
	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
		// a word is roughly two tokens
		MaxOutputTokens: int32(limits.MaxLength * 2),
	}

	var lastErr error
	for range len(g.apiKeys) {
		idx, key := g.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if text == "" {
			return "", fmt.Errorf("empty response from Gemini")
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiBackend) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

func (g *geminiBackend) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
