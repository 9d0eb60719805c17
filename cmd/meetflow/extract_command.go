package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/tasks"
)

const stageExtract = "task extraction"

func newExtractTasksCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "extract-tasks [transcript_file]",
		Short: "Extract action items from a transcript",
		Long: `Extract scans transcript text for action items and prints them with their
assignee, deadline and priority. Text is read from the file argument or from
stdin. At most 10 tasks are printed; high priority ones are always kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := ctx.newLogger(cmd, nil)

			text, err := readInput(cmd.Context(), cmd, args, log)
			if err != nil {
				return stageFailed(stageExtract, err)
			}

			found := tasks.Extract(text)
			log.Debug(cmd.Context(), "Extracted %d tasks", len(found))

			switch format {
			case "json":
				err = tasks.WriteJSON(cmd.OutOrStdout(), found)
			case "table":
				err = tasks.WriteTable(cmd.OutOrStdout(), found)
			default:
				err = fmt.Errorf("unknown format %q (want json or table)", format)
			}
			return stageFailed(stageExtract, err)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or table")
	return cmd
}
