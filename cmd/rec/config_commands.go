package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/rec/internal/audio"
	"github.com/nguyentantai21042004/rec/internal/config"
)

func newConfigCommand(cmdCtx *commandContext) *cobra.Command {
	showConfig := func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdCtx.ensureConfig()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change workspace configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value (e.g. transcription.language en)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", args[0], args[1])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "devices",
		Short: "List available audio input devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := audio.NewEnumerator(cmdCtx.exec).ListInputDevices(cmd.Context())
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				fmt.Println("No audio input devices found.")
				return nil
			}
			rows := make([][]string, 0, len(devices))
			for _, d := range devices {
				rows = append(rows, []string{fmt.Sprintf("%d", d.Index), d.Name})
			}
			fmt.Println(renderTable([]string{"Index", "Name"}, rows))
			return nil
		},
	})

	return cmd
}
