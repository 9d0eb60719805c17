package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[string]level{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

type implLogger struct {
	logger *log.Logger
	level  level
}

// New creates a Logger writing to stderr. Stdout is reserved for command output.
func New(lvl string) Logger {
	return NewWithWriter(os.Stderr, lvl)
}

// NewWithWriter creates a Logger writing to w. Unknown levels fall back to info.
func NewWithWriter(w io.Writer, lvl string) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  parseLevel(lvl),
	}
}

// ValidLevel reports whether lvl is a known level name.
func ValidLevel(lvl string) bool {
	_, ok := levelNames[strings.ToLower(strings.TrimSpace(lvl))]
	return ok
}

func parseLevel(lvl string) level {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(lvl))]; ok {
		return l
	}
	return levelInfo
}

func (l *implLogger) shouldLog(target level) bool {
	return target >= l.level
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...any) {
	if l.shouldLog(levelDebug) {
		l.logger.Printf("[DEBUG] "+msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.shouldLog(levelInfo) {
		l.logger.Printf("[INFO] "+msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.shouldLog(levelWarn) {
		l.logger.Printf("[WARN] "+msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.shouldLog(levelError) {
		l.logger.Printf("[ERROR] "+msg, args...)
	}
}

// Discard returns a Logger that drops everything. Useful in tests.
func Discard() Logger {
	return NewWithWriter(io.Discard, "error")
}
