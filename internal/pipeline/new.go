package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcriber"
)

type implPipeline struct {
	outputDir   string
	docx        bool
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
	now         func() time.Time
}

// New creates a Pipeline writing its records into cfg.Paths.Output.
func New(cfg *config.Config, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		outputDir:   cfg.Paths.Output,
		docx:        cfg.Report.Docx,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
		now:         time.Now,
	}
}
