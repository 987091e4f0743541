package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/rec/internal/export"
	"github.com/nguyentantai21042004/rec/internal/workspace"
)

func newExportCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		exportTranscript bool
		outputPath       string
	)

	cmd := &cobra.Command{
		Use:   "export <id-prefix>",
		Short: "Export a recording's summary or transcript to a Word document",
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

			artifact := workspace.SummaryFile
			if exportTranscript {
				artifact = workspace.TranscriptFile
			}
			text, err := store.ReadArtifact(entry.Dir, artifact)
			if err != nil {
				return fmt.Errorf("read %s for %s: %w", artifact, entry.Record.ID, err)
			}

			out := outputPath
			if out == "" {
				suffix := "summary"
				if exportTranscript {
					suffix = "transcript"
				}
				out = fmt.Sprintf("%s-%s.docx", entry.Record.ID, suffix)
			}

			if exportTranscript {
				err = export.TranscriptToDocx(entry.Record.Title, text, out)
			} else {
				err = export.MarkdownToDocx(entry.Record.Title, text, out)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", entry.Record.ID, err)
			}
			fmt.Printf("%s %s\n", successText("Exported:"), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&exportTranscript, "transcript", "t", false, "Export the transcript instead of the summary")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default <id>-summary.docx)")
	return cmd
}
