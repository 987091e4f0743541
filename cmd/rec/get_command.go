package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/rec/internal/workspace"
)

func newGetCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		showTranscript bool
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "get <id-prefix>",
		Short: "Show a recording's summary or transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cmdCtx.store()
			if err != nil {
				return err
			}
			entry, err := store.FindByPrefix(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entry.Record)
			}

			artifact := workspace.SummaryFile
			if showTranscript {
				artifact = workspace.TranscriptFile
			}
			text, err := store.ReadArtifact(entry.Dir, artifact)
			if err != nil {
				return fmt.Errorf("read %s for %s: %w", artifact, entry.Record.ID, err)
			}
			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showTranscript, "transcript", "t", false, "Show the transcript instead of the summary")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output metadata as JSON")
	return cmd
}
