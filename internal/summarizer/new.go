package summarizer

import (
	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type implSummarizer struct {
	backend        Backend
	limits         Limits
	maxChunkLength int
	minChunkLength int
	logger         logger.Logger
}

// New creates a Summarizer that splits text into chunks and sends each one to backend.
func New(cfg config.SummarizerConfig, backend Backend, log logger.Logger) Summarizer {
	return &implSummarizer{
		backend: backend,
		limits: Limits{
			MaxLength: cfg.MaxLength,
			MinLength: cfg.MinLength,
		},
		maxChunkLength: cfg.MaxChunkLength,
		minChunkLength: cfg.MinChunkLength,
		logger:         log,
	}
}
