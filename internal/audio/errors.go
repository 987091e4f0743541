package audio

import (
	"errors"
	"fmt"
)

// ErrFFmpegNotFound means the capture tool binary is not installed.
var ErrFFmpegNotFound = errors.New("ffmpeg not found; install it with: brew install ffmpeg")

// CaptureError reports an abnormal capture process exit that was not
// caused by a requested stop.
type CaptureError struct {
	ExitCode int
	Stderr   string
}

func (e *CaptureError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("ffmpeg exited with code %d", e.ExitCode)
}
