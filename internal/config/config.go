package config

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type Config struct {
	Whisper    WhisperConfig    `yaml:"whisper"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Paths      PathsConfig      `yaml:"paths"`
	Report     ReportConfig     `yaml:"report"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type SummarizerConfig struct {
	Model          string   `yaml:"model"`
	APIKeys        []string `yaml:"api_keys"`
	MaxLength      int      `yaml:"max_length"`
	MinLength      int      `yaml:"min_length"`
	MaxChunkLength int      `yaml:"max_chunk_length"`
	MinChunkLength int      `yaml:"min_chunk_length"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type ReportConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Validate fills unset fields with defaults and rejects values that cannot work.
// Whisper model and Gemini keys are checked by the stages that need them.
func (c *Config) Validate() error {
	c.applyDefaults()

	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must be positive")
	}
	if c.Summarizer.MinLength > c.Summarizer.MaxLength {
		return fmt.Errorf("summarizer.min_length (%d) exceeds summarizer.max_length (%d)",
			c.Summarizer.MinLength, c.Summarizer.MaxLength)
	}
	if c.Summarizer.MaxChunkLength < 0 || c.Summarizer.MinChunkLength < 0 {
		return fmt.Errorf("summarizer chunk lengths must be positive")
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// applyDefaults fills every unset field. It never fails.
func (c *Config) applyDefaults() {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}
	if c.Summarizer.MaxLength == 0 {
		c.Summarizer.MaxLength = 150
	}
	if c.Summarizer.MinLength == 0 {
		c.Summarizer.MinLength = 40
	}
	if c.Summarizer.MaxChunkLength == 0 {
		c.Summarizer.MaxChunkLength = 1024
	}
	if c.Summarizer.MinChunkLength == 0 {
		c.Summarizer.MinChunkLength = 50
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
