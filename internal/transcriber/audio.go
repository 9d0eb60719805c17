package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// ensureAudio returns a path whisper can read. Audio passes through; video is
// converted to 16kHz mono WAV inside workDir, never next to the source.
func (t *implTranscriber) ensureAudio(ctx context.Context, mediaPath, workDir string) (string, error) {
	kind, ok := DetectFileType(mediaPath)
	if !ok {
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(mediaPath))
	}
	if kind == FileTypeAudio {
		return mediaPath, nil
	}

	base := filepath.Base(mediaPath)
	audioPath := filepath.Join(workDir, strings.TrimSuffix(base, filepath.Ext(base))+"_temp.wav")

	t.logger.Info(ctx, "Extracting audio from video: %s", mediaPath)

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-f", "wav",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, t.ffmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
