package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const searchPromptTemplate = `Search the transcripts and summaries under records/ for recordings relevant to this query.
List each match as its directory ID followed by a one-line reason, most relevant first.

Query: %s`

func newSearchCommand(cmdCtx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search recordings with an AI query over transcripts and summaries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cmdCtx.ensureConfig(); err != nil {
				return err
			}
			client, err := cmdCtx.agentClient()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			result, err := client.Prompt(cmd.Context(), fmt.Sprintf(searchPromptTemplate, query))
			if err != nil {
				return err
			}
			fmt.Println(result.Text)
			return nil
		},
	}
	return cmd
}
