package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/rec/internal/workspace"
)

const editPromptTemplate = `The recording %q lives in the directory %s.
It contains transcript.md (the raw transcription), summary.md (the current summary), and metadata.json.

Apply this instruction to summary.md, keeping the rest of the record untouched:

%s`

func newEditCommand(cmdCtx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id-prefix> <instruction>",
		Short: "Revise a recording's summary with an AI instruction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cmdCtx.store()
			if err != nil {
				return err
			}
			entry, err := store.FindByPrefix(args[0])
			if err != nil {
				return err
			}
			client, err := cmdCtx.agentClient()
			if err != nil {
				return err
			}

			instruction := strings.Join(args[1:], " ")
			relDir, relErr := filepath.Rel(store.Root(), entry.Dir)
			if relErr != nil {
				relDir = entry.Dir
			}
			prompt := fmt.Sprintf(editPromptTemplate, entry.Record.ID, relDir, instruction)

			fmt.Printf("Editing %s...\n", entry.Record.ID)
			result, err := client.Edit(cmd.Context(), prompt)
			if err != nil {
				return err
			}
			if result.Text != "" {
				fmt.Println(result.Text)
			}

			if result.SessionID != "" && result.SessionID != entry.Record.SessionID {
				entry.Record.SessionID = result.SessionID
				if err := store.SaveMetadata(entry.Dir, entry.Record); err != nil {
					return err
				}
			}
			fmt.Printf("%s %s\n", successText("Updated:"), filepath.Join(entry.Dir, workspace.SummaryFile))
			return nil
		},
	}
	return cmd
}
