package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-flow/pkg/executor"
)

const defaultConfigPath = "config.yaml"

type commandContext struct {
	configFlag   string
	logLevelFlag string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	// swapped in tests
	newExecutor       func() executor.Executor
	newSummaryBackend func(cfg *config.Config, log logger.Logger) (summarizer.Backend, error)
}

func newCommandContext() *commandContext {
	return &commandContext{
		newExecutor: executor.New,
		newSummaryBackend: func(cfg *config.Config, log logger.Logger) (summarizer.Backend, error) {
			return summarizer.NewGemini(cfg.Summarizer.APIKeys, cfg.Summarizer.Model, log)
		},
	}
}

// ensureConfig loads the config once. A missing default file means defaults;
// a missing file named with --config is an error.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(c.configFlag)
		if path == "" {
			c.config, c.configErr = config.LoadOrDefault(defaultConfigPath)
			return
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

// newLogger builds a logger on the command's stderr. --log-level wins over the config level.
func (c *commandContext) newLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	level := strings.TrimSpace(c.logLevelFlag)
	if level == "" && cfg != nil {
		level = cfg.Logging.Level
	}
	return logger.NewWithWriter(cmd.ErrOrStderr(), level)
}
