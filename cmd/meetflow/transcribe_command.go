package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-flow/internal/transcriber"
)

const stageTranscribe = "transcription"

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe <audio_file_path>",
		Short: "Transcribe an audio or video recording",
		Long: `Transcribe runs whisper.cpp over a recording and prints the transcript.
Video files are converted to 16kHz mono WAV with ffmpeg first.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: %s", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return stageFailed(stageTranscribe, err)
			}
			log := ctx.newLogger(cmd, cfg)

			tr, err := transcriber.New(cfg, ctx.newExecutor(), log)
			if err != nil {
				return stageFailed(stageTranscribe, err)
			}

			transcript, err := tr.Transcribe(cmd.Context(), args[0])
			if err != nil {
				return stageFailed(stageTranscribe, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), transcript)
			return stageFailed(stageTranscribe, err)
		},
	}
}
