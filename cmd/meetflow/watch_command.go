package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/watcher"
)

const stageWatch = "watch"

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process every recording dropped into the input directory",
		Long: `Watch monitors paths.input and runs the process pipeline for each new audio
or video file, one file at a time. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return stageFailed(stageWatch, err)
			}
			log := ctx.newLogger(cmd, cfg)
			runCtx := cmd.Context()

			for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return stageFailed(stageWatch, fmt.Errorf("create directory %s: %w", dir, err))
				}
			}

			p, err := ctx.buildPipeline(cfg, log)
			if err != nil {
				return stageFailed(stageWatch, err)
			}

			w, err := watcher.New(cfg.Paths.Input, func(c context.Context, path string) error {
				_, err := p.Process(c, path)
				return err
			}, log)
			if err != nil {
				return stageFailed(stageWatch, err)
			}
			defer w.Stop()

			log.Info(runCtx, "Meeting pipeline is ready. Monitoring: %s, output: %s", cfg.Paths.Input, cfg.Paths.Output)
			log.Info(runCtx, "Press Ctrl+C to stop")

			if err := w.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return stageFailed(stageWatch, err)
			}
			log.Info(runCtx, "Meeting pipeline stopped")
			return nil
		},
	}
}
