package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newTranscribeCommand(cmdCtx *commandContext) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe and summarize an existing audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioPath, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			info, err := os.Stat(audioPath)
			if err != nil {
				return fmt.Errorf("audio file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory, not an audio file", audioPath)
			}

			pipe, err := cmdCtx.buildPipeline()
			if err != nil {
				return err
			}

			duration := pipe.ProbeDuration(cmd.Context(), audioPath)
			entry, err := pipe.ProcessAudio(cmd.Context(), audioPath, duration, time.Now(), language)
			if err != nil {
				return err
			}
			printEntry(entry)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Override the configured transcription language")
	return cmd
}
