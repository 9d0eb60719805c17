package transcriber

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/pkg/executor"
)

type implTranscriber struct {
	whisper  config.WhisperConfig
	ffmpeg   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a whisper.cpp backed Transcriber. It fails when the whisper
// binary or model cannot be found.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	if cfg.Whisper.ModelPath == "" {
		return nil, fmt.Errorf("whisper.model_path is required")
	}
	if _, err := os.Stat(cfg.Whisper.ModelPath); err != nil {
		return nil, fmt.Errorf("whisper model unavailable: %w", err)
	}
	if _, err := exec.LookPath(cfg.Whisper.BinaryPath); err != nil {
		return nil, fmt.Errorf("whisper unavailable: %w", err)
	}

	return &implTranscriber{
		whisper:  cfg.Whisper,
		ffmpeg:   cfg.FFmpeg.BinaryPath,
		executor: exec,
		logger:   log,
	}, nil
}
