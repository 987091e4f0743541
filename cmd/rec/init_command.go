package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/rec/internal/audio"
	"github.com/nguyentantai21042004/rec/internal/config"
	"github.com/nguyentantai21042004/rec/internal/workspace"
)

const claudeMdTemplate = `# rec workspace

This directory is a rec CLI workspace containing audio recordings, transcripts, and summaries.

## Directory structure

- ` + "`records/`" + `: each subdirectory is one recording session
  - ` + "`audio.wav`" + `: recorded audio
  - ` + "`transcript.md`" + `: full transcription
  - ` + "`summary.md`" + `: AI-generated summary
  - ` + "`metadata.json`" + `: session metadata (id, createdAt, duration, title)
- ` + "`config.json`" + `: workspace configuration

## Guidelines

- When asked about recordings, search through ` + "`records/*/transcript.md`" + ` and ` + "`records/*/summary.md`" + `.
- Reference specific recordings by their directory name (ID).
- When summarizing or analyzing, consider all available transcripts and summaries.
- Respond in the same language as the transcripts unless asked otherwise.
`

func newInitCommand(cmdCtx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a rec workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			workspacePath := config.ResolveWorkspacePath(input)

			if !force {
				if _, err := os.Stat(config.Path(workspacePath)); err == nil {
					return fmt.Errorf("workspace already initialized at %s; use --force to reinitialize", workspacePath)
				}
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			ask := func(prompt, fallback string) string {
				fmt.Printf("%s [%s]: ", prompt, fallback)
				line, _ := reader.ReadString('\n')
				line = strings.TrimSpace(line)
				if line == "" {
					return fallback
				}
				return line
			}

			fmt.Printf("Initializing workspace at: %s\n\n", workspacePath)

			cfg := config.Default(workspacePath)
			cfg.Transcription.Language = ask("Language (ja/en/auto)", cfg.Transcription.Language)
			cfg.Transcription.Provider = ask("Transcription provider (openai/local)", cfg.Transcription.Provider)
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Transcription.Provider == "openai" && os.Getenv("OPENAI_API_KEY") == "" {
				fmt.Println(warnText("\nWarning: OPENAI_API_KEY is not set. Set it before using rec record."))
			}

			fmt.Println("\nDetecting audio devices...")
			enum := audio.NewEnumerator(cmdCtx.exec)
			devices, err := enum.ListInputDevices(cmd.Context())
			if err != nil {
				fmt.Println(warnText(err.Error()))
			}
			if len(devices) > 0 {
				fmt.Println("\nAvailable audio input devices:")
				for _, d := range devices {
					fmt.Printf("  [%d] %s\n", d.Index, d.Name)
				}
				answer := ask("\nDevice index", strconv.Itoa(cfg.Recording.DeviceIndex))
				if idx, convErr := strconv.Atoi(answer); convErr == nil {
					cfg.Recording.DeviceIndex = idx
				}
			} else {
				fmt.Println("No devices detected. Using default device index 0.")
			}

			store := workspace.NewStore(workspacePath)
			if err := os.MkdirAll(store.RecordsDir(), 0755); err != nil {
				return fmt.Errorf("create workspace: %w", err)
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			if err := os.WriteFile(filepath.Join(workspacePath, "CLAUDE.md"), []byte(claudeMdTemplate), 0644); err != nil {
				return fmt.Errorf("write CLAUDE.md: %w", err)
			}

			fmt.Printf("\nWorkspace initialized at %s\n", workspacePath)
			if workspacePath != config.DefaultWorkspacePath() {
				fmt.Println(warnText(fmt.Sprintf("\nSet the environment variable to use this workspace:\n  export REC_WORKSPACE=%q", workspacePath)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reinitialize an existing workspace")
	return cmd
}
