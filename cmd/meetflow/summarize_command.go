package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/summarizer"
)

const stageSummarize = "summarization"

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [text_file]",
		Short: "Summarize a transcript",
		Long: `Summarize condenses text read from the file argument or stdin. Long text is
split into chunks that are summarized separately and joined.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return stageFailed(stageSummarize, err)
			}
			log := ctx.newLogger(cmd, cfg)

			backend, err := ctx.newSummaryBackend(cfg, log)
			if err != nil {
				return stageFailed(stageSummarize, err)
			}

			text, err := readInput(cmd.Context(), cmd, args, log)
			if err != nil {
				return stageFailed(stageSummarize, err)
			}

			summary, err := summarizer.New(cfg.Summarizer, backend, log).Summarize(cmd.Context(), text)
			if err != nil {
				return stageFailed(stageSummarize, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
			return stageFailed(stageSummarize, err)
		},
	}
}
