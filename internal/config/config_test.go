package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit values",
			config: Config{
				Whisper:    WhisperConfig{ModelPath: "models/ggml-base.en.bin", Threads: 8},
				Summarizer: SummarizerConfig{MaxLength: 200, MinLength: 60},
				Logging:    LoggingConfig{Level: "debug"},
			},
			wantErr: false,
		},
		{
			name:    "min length above max length",
			config:  Config{Summarizer: SummarizerConfig{MaxLength: 30, MinLength: 40}},
			wantErr: true,
		},
		{
			name:    "negative threads",
			config:  Config{Whisper: WhisperConfig{Threads: -1}},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{Logging: LoggingConfig{Level: "chatty"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "whisper-cli", cfg.Whisper.BinaryPath)
	assert.Equal(t, "ffmpeg", cfg.FFmpeg.BinaryPath)
	assert.Equal(t, 150, cfg.Summarizer.MaxLength)
	assert.Equal(t, 40, cfg.Summarizer.MinLength)
	assert.Equal(t, 1024, cfg.Summarizer.MaxChunkLength)
	assert.Equal(t, 50, cfg.Summarizer.MinChunkLength)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Report.Docx)

	before := *cfg
	require.NoError(t, cfg.Validate())
	assert.Equal(t, before.Summarizer, cfg.Summarizer)
	assert.Equal(t, before.Paths, cfg.Paths)
}

func TestLoad(t *testing.T) {
	t.Setenv(APIKeysEnv, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper"
  language: "en"
  prompt: "standup"

summarizer:
  api_keys: ["k1", "k2"]
  max_length: 120

paths:
  input: "data/input"
  output: "data/output"

report:
  docx: true

logging:
  level: "warn"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "models/test.bin", cfg.Whisper.ModelPath)
	assert.Equal(t, "./whisper", cfg.Whisper.BinaryPath)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Summarizer.APIKeys)
	assert.Equal(t, 120, cfg.Summarizer.MaxLength)
	assert.Equal(t, 40, cfg.Summarizer.MinLength)
	assert.Equal(t, "data/input", cfg.Paths.Input)
	assert.True(t, cfg.Report.Docx)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadAPIKeysFromEnv(t *testing.T) {
	t.Setenv(APIKeysEnv, " a , ,b ")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summarizer:\n  api_keys: [\"file\"]\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cfg.Summarizer.APIKeys)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("whisper: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	t.Setenv(APIKeysEnv, "")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.Summarizer.Model)
	assert.Empty(t, cfg.Summarizer.APIKeys)
}
