package executor

import "context"

// Executor runs external tools and captures their output. Every
// external engine the pipeline talks to (ffmpeg, ffprobe, whisper,
// claude) goes through this so tests can substitute a fake.
type Executor interface {
	// Execute runs name with args and returns stdout. On failure the
	// error carries trimmed stderr for diagnosis.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteInDir is Execute with an explicit working directory.
	ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error)
}
