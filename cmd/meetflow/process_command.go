package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-flow/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-flow/internal/tasks"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcriber"
)

const stageProcess = "processing"

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var docx bool

	cmd := &cobra.Command{
		Use:   "process <media_file>",
		Short: "Transcribe, summarize and extract tasks from one recording",
		Long: `Process runs the whole meeting pipeline over one recording and writes
<stem>.meeting.json (and <stem>.docx with --docx) to the output directory.
The extracted tasks are also printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return stageFailed(stageProcess, err)
			}
			if cmd.Flags().Changed("docx") {
				cfg.Report.Docx = docx
			}
			log := ctx.newLogger(cmd, cfg)

			p, err := ctx.buildPipeline(cfg, log)
			if err != nil {
				return stageFailed(stageProcess, err)
			}

			m, err := p.Process(cmd.Context(), args[0])
			if err != nil {
				return stageFailed(stageProcess, err)
			}
			return stageFailed(stageProcess, tasks.WriteJSON(cmd.OutOrStdout(), m.Tasks))
		},
	}

	cmd.Flags().BoolVar(&docx, "docx", false, "Also write a .docx meeting report")
	return cmd
}

// buildPipeline wires the transcription and summarization backends. Both are
// checked up front so a missing model or key fails before any work starts.
func (c *commandContext) buildPipeline(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	tr, err := transcriber.New(cfg, c.newExecutor(), log)
	if err != nil {
		return nil, err
	}

	backend, err := c.newSummaryBackend(cfg, log)
	if err != nil {
		return nil, err
	}

	return pipeline.New(cfg, tr, summarizer.New(cfg.Summarizer, backend, log), log), nil
}
