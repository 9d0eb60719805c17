package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe runs whisper.cpp over mediaPath and returns the transcript as a single line.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath string) (string, error) {
	if _, err := os.Stat(mediaPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("audio file not found: %s", mediaPath)
		}
		return "", fmt.Errorf("stat %s: %w", mediaPath, err)
	}

	workDir, err := os.MkdirTemp("", "meetflow-whisper-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	audioPath, err := t.ensureAudio(ctx, mediaPath, workDir)
	if err != nil {
		return "", err
	}

	// whisper.cpp appends .txt to the prefix
	outputPrefix := filepath.Join(workDir, "transcript")

	args := []string{
		"-m", t.whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-np",
		"-l", t.whisper.Language,
		"-t", strconv.Itoa(t.whisper.Threads),
		"--output-file", outputPrefix,
	}
	if t.whisper.Prompt != "" {
		args = append(args, "--prompt", t.whisper.Prompt)
	}

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.whisper.Threads, audioPath)

	if _, err := t.executor.Execute(ctx, t.whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	// one line per segment in the txt output
	transcript := strings.Join(strings.Fields(string(data)), " ")
	t.logger.Info(ctx, "Transcription completed: %d characters", len(transcript))
	return transcript, nil
}
