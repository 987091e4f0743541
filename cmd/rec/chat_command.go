package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newChatCommand(cmdCtx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [args...]",
		Short: "Open an interactive AI session inside the workspace",
		Long: `Starts the claude CLI in the workspace directory so the session can read
every transcript and summary. Extra arguments are passed through verbatim.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cmdCtx.ensureConfig(); err != nil {
				return err
			}
			client, err := cmdCtx.agentClient()
			if err != nil {
				return err
			}
			code, err := client.Passthrough(cmd.Context(), args)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
