package transcriber

import (
	"context"
	"errors"
)

// ErrTranscriptionFailed wraps every transcription failure, whether the
// transcoding step or the engine call broke. The client never writes
// partial output.
var ErrTranscriptionFailed = errors.New("transcription failed")

// Transcriber converts a captured audio file to plain text. The
// language hint "auto" (or empty) means "let the engine detect".
// Backends are selected once from configuration at pipeline start.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}
