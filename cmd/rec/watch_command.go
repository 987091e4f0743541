package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/rec/internal/watcher"
)

func newWatchCommand(cmdCtx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a directory and process dropped audio files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			pipe, err := cmdCtx.buildPipeline()
			if err != nil {
				return err
			}
			log := cmdCtx.logger()

			watchDir := filepath.Join(cfg.WorkspacePath, "inbox")
			if len(args) > 0 {
				abs, absErr := filepath.Abs(args[0])
				if absErr != nil {
					return absErr
				}
				watchDir = abs
			}
			if err := os.MkdirAll(watchDir, 0755); err != nil {
				return fmt.Errorf("create watch dir: %w", err)
			}

			handler := func(ctx context.Context, path string) error {
				duration := pipe.ProbeDuration(ctx, path)
				entry, err := pipe.ProcessAudio(ctx, path, duration, fileCreatedAt(path), "")
				if err != nil {
					return err
				}
				fmt.Printf("%s %s\n", successText("Processed:"), entry.Record.ID)
				return nil
			}

			w, err := watcher.New(watchDir, handler, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Watching %s for audio files. Press Ctrl+C to stop.\n", watchDir)
			defer w.Stop()
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	return cmd
}

// fileCreatedAt approximates a dropped file's capture time from its
// modification time.
func fileCreatedAt(path string) time.Time {
	if info, err := os.Stat(path); err == nil {
		return info.ModTime()
	}
	return time.Now()
}
