package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/rec/internal/audio"
	"github.com/nguyentantai21042004/rec/internal/workspace"
)

func newRecordCommand(cmdCtx *commandContext) *cobra.Command {
	var pickInput bool

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record from the microphone, then transcribe and summarize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			pipe, err := cmdCtx.buildPipeline()
			if err != nil {
				return err
			}

			enum := audio.NewEnumerator(cmdCtx.exec)
			deviceIndex := cfg.Recording.DeviceIndex
			if pickInput {
				deviceIndex, err = pickDevice(cmd, enum, deviceIndex)
				if err != nil {
					return err
				}
			}

			tmpDir, err := os.MkdirTemp("", "rec-capture-")
			if err != nil {
				return fmt.Errorf("create temp dir: %w", err)
			}
			defer os.RemoveAll(tmpDir)

			fmt.Println(boldText("Recording... press Ctrl+C to stop."))
			startedAt := time.Now()
			result, err := audio.NewRecorder(cfg, enum, cmdCtx.logger()).
				Record(cmd.Context(), filepath.Join(tmpDir, workspace.AudioFile), deviceIndex)
			if err != nil {
				return err
			}
			fmt.Printf("Captured %s of audio.\n\n", formatDuration(result.Duration))

			entry, err := pipe.ProcessAudio(cmd.Context(), result.Path, result.Duration, startedAt, "")
			if err != nil {
				return err
			}
			printEntry(entry)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pickInput, "input", "i", false, "Choose the input device interactively")
	return cmd
}

func pickDevice(cmd *cobra.Command, enum *audio.Enumerator, fallback int) (int, error) {
	devices, err := enum.ListInputDevices(cmd.Context())
	if err != nil {
		return 0, err
	}
	if len(devices) == 0 {
		return fallback, nil
	}

	fmt.Println("Available audio input devices:")
	for _, d := range devices {
		fmt.Printf("  [%d] %s\n", d.Index, d.Name)
	}
	fmt.Printf("Device index [%d]: ", fallback)

	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback, nil
	}
	idx, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid device index %q", line)
	}
	return idx, nil
}

// printEntry reports a finished pipeline run: summary body first, then
// the identity and followup hints.
func printEntry(entry workspace.Entry) {
	if summary, err := os.ReadFile(filepath.Join(entry.Dir, workspace.SummaryFile)); err == nil {
		fmt.Println(strings.TrimSpace(string(summary)))
		fmt.Println()
	}
	fmt.Printf("%s %s\n", successText("Saved:"), entry.Record.ID)
	fmt.Println(dimText(fmt.Sprintf("Refine it with: rec edit %s", entry.Record.ID)))
	if entry.Record.SessionID != "" {
		fmt.Println(dimText(fmt.Sprintf("Agent session: %s", entry.Record.SessionID)))
	}
}

func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d >= time.Hour {
		return fmt.Sprintf("%d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
