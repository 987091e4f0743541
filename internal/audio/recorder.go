package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nguyentantai21042004/rec/internal/config"
	"github.com/nguyentantai21042004/rec/internal/logger"
)

// Result reports a finished capture.
type Result struct {
	Path     string
	Duration int // seconds, wall-clock elapsed rounded to nearest
}

// Recorder supervises one external ffmpeg capture process per Record
// call.
type Recorder struct {
	cfg  *config.Config
	enum *Enumerator
	log  logger.Logger
}

// NewRecorder creates a Recorder using the workspace config for format
// parameters.
func NewRecorder(cfg *config.Config, enum *Enumerator, log logger.Logger) *Recorder {
	return &Recorder{cfg: cfg, enum: enum, log: log}
}

// stopControl makes the graceful stop idempotent: the interrupt
// handler and any repeated signals race toward one `q` byte on the
// capture process's stdin, never more.
type stopControl struct {
	once      sync.Once
	stdin     io.Writer
	requested atomic.Bool
}

func newStopControl(stdin io.Writer) *stopControl {
	return &stopControl{stdin: stdin}
}

func (s *stopControl) requestStop() {
	s.once.Do(func() {
		s.requested.Store(true)
		// ffmpeg treats `q` on stdin as "finish writing and exit".
		_, _ = s.stdin.Write([]byte("q"))
	})
}

func (s *stopControl) stopRequested() bool {
	return s.requested.Load()
}

// captureExitOK decides whether a capture exit code counts as success.
// 255 is ffmpeg's usual code after a `q` stop; any code is fine once a
// stop was requested.
func captureExitOK(code int, stopRequested bool) bool {
	if code == 0 || code == 255 {
		return true
	}
	return stopRequested
}

// Record captures audio from the configured device until the process
// exits or the user interrupts. The SIGINT subscription lives exactly
// as long as the call: it is installed before the process starts and
// removed on every return path, so repeated recordings never leak
// signal state.
func (r *Recorder) Record(ctx context.Context, outputPath string, deviceIndex int) (Result, error) {
	sampleRate := r.cfg.Recording.SampleRate
	channels := r.cfg.Recording.Channels
	if sampleRate == 0 || channels == 0 {
		chars := r.enum.Characteristics(ctx, deviceIndex)
		if sampleRate == 0 {
			sampleRate = chars.SampleRate
		}
		if channels == 0 {
			channels = chars.Channels
		}
		r.log.Debug(ctx, "resolved device %d format: %d Hz, %d ch", deviceIndex, sampleRate, channels)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", "avfoundation",
		"-i", fmt.Sprintf(":%d", deviceIndex),
		"-acodec", r.cfg.Recording.Codec,
		"-ar", strconv.Itoa(sampleRate),
		"-ac", strconv.Itoa(channels),
		"-y",
		outputPath,
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return Result{}, fmt.Errorf("open capture stdin: %w", err)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return Result{}, ErrFFmpegNotFound
		}
		return Result{}, fmt.Errorf("start capture: %w", err)
	}

	stop := newStopControl(stdin)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-sigCh:
				stop.requestStop()
			case <-done:
				return
			}
		}
	}()

	waitErr := cmd.Wait()
	duration := int(math.Round(time.Since(start).Seconds()))

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			if !captureExitOK(exitErr.ExitCode(), stop.stopRequested()) {
				return Result{}, &CaptureError{
					ExitCode: exitErr.ExitCode(),
					Stderr:   lastLine(stderr.String()),
				}
			}
		} else if !stop.stopRequested() {
			return Result{}, fmt.Errorf("capture: %w", waitErr)
		}
	}

	r.log.Info(ctx, "capture finished: %s (%ds)", outputPath, duration)
	return Result{Path: outputPath, Duration: duration}, nil
}

// lastLine keeps only ffmpeg's final stderr line; the full transcript
// is progress noise.
func lastLine(s string) string {
	lines := []byte(s)
	end := len(lines)
	for end > 0 && (lines[end-1] == '\n' || lines[end-1] == '\r') {
		end--
	}
	startIdx := end
	for startIdx > 0 && lines[startIdx-1] != '\n' {
		startIdx--
	}
	return string(lines[startIdx:end])
}
