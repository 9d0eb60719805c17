package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-flow/internal/tasks"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcriber"
)

// minTranscriptLength rejects transcripts that are mostly silence.
const minTranscriptLength = 10

// ErrEmptyTranscript is returned when the transcript is too short to use.
var ErrEmptyTranscript = errors.New("empty or invalid transcript")

// Process transcribes, summarizes and extracts tasks from mediaPath. The
// meeting record is written even when a step fails, with status failed.
func (p *implPipeline) Process(ctx context.Context, mediaPath string) (*Meeting, error) {
	startTime := p.now()

	kind, ok := transcriber.DetectFileType(mediaPath)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(mediaPath))
	}

	m := &Meeting{
		ID:            uuid.NewString(),
		Title:         titleFromPath(mediaPath),
		AudioFileName: filepath.Base(mediaPath),
		FileType:      kind,
		Tasks:         []tasks.Task{},
		Status:        StatusProcessing,
		CreatedAt:     startTime,
		UpdatedAt:     startTime,
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing meeting %s: %s", m.ID, mediaPath)
	p.logger.Info(ctx, "========================================")

	if err := p.run(ctx, mediaPath, m); err != nil {
		m.Status = StatusFailed
		m.Error = err.Error()
		m.UpdatedAt = p.now()
		if _, werr := p.writeRecord(m, mediaPath); werr != nil {
			p.logger.Warn(ctx, "Failed to write failed meeting record: %v", werr)
		}
		return m, err
	}

	m.Status = StatusCompleted
	m.UpdatedAt = p.now()

	recordPath, err := p.writeRecord(m, mediaPath)
	if err != nil {
		return m, fmt.Errorf("write meeting record: %w", err)
	}

	if p.docx {
		if reportPath, err := p.writeReport(m, mediaPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx report: %v", err)
		} else {
			p.logger.Info(ctx, "Report: %s", reportPath)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Tasks found: %d", len(m.Tasks))
	p.logger.Info(ctx, "Meeting record: %s", recordPath)
	p.logger.Info(ctx, "Processing time: %s", p.now().Sub(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return m, nil
}

func (p *implPipeline) run(ctx context.Context, mediaPath string, m *Meeting) error {
	// Step 1: Transcribe
	transcript, err := p.transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	if utf8.RuneCountInString(strings.TrimSpace(transcript)) < minTranscriptLength {
		return ErrEmptyTranscript
	}
	m.Transcript = transcript

	// Step 2: Summarize
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	m.Summary = summary

	// Step 3: Extract tasks
	m.Tasks = tasks.Extract(transcript)
	return nil
}
