// Package pipeline sequences a captured audio file through persistence,
// transcription, summarization and finalization. Each phase persists
// its artifact before the next phase starts, so any failure leaves
// everything already produced on disk for inspection or manual rework.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/rec/internal/config"
	"github.com/nguyentantai21042004/rec/internal/logger"
	"github.com/nguyentantai21042004/rec/internal/summarizer"
	"github.com/nguyentantai21042004/rec/internal/transcriber"
	"github.com/nguyentantai21042004/rec/internal/workspace"
	"github.com/nguyentantai21042004/rec/pkg/executor"
)

// PhaseError names the pipeline phase that failed alongside the cause.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Pipeline drives one capture-to-record run. Phases execute strictly
// sequentially; there is no retry and no cancellation once a phase has
// started.
type Pipeline struct {
	cfg         *config.Config
	store       *workspace.Store
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	exec        executor.Executor
	log         logger.Logger
}

// New assembles a Pipeline from its collaborators.
func New(cfg *config.Config, store *workspace.Store, tr transcriber.Transcriber, sum summarizer.Summarizer, exec executor.Executor, log logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:         cfg,
		store:       store,
		transcriber: tr,
		summarizer:  sum,
		exec:        exec,
		log:         log,
	}
}

// ProcessAudio takes a captured (or externally supplied) audio file
// through the full pipeline and returns the finalized record. The
// workspace lock is held for the whole run; a concurrent run fails
// fast with workspace.ErrLocked.
//
// Write order is the contract: provisional record with the audio copy
// first, transcript as soon as transcription succeeds, summary next,
// and the finalize rename strictly last.
func (p *Pipeline) ProcessAudio(ctx context.Context, audioPath string, duration int, capturedAt time.Time, languageOverride string) (workspace.Entry, error) {
	release, err := p.store.Lock()
	if err != nil {
		return workspace.Entry{}, err
	}
	defer release()

	// Persist provisional: the raw audio must survive even if every
	// later phase fails.
	provisionalID := workspace.GenerateID(capturedAt, workspace.TitleProcessing)
	dir, err := p.store.CreateRecordDir(provisionalID)
	if err != nil {
		return workspace.Entry{}, &PhaseError{Phase: "persist audio", Err: err}
	}
	storedAudio := filepath.Join(dir, workspace.AudioFile)
	if err := copyFile(audioPath, storedAudio); err != nil {
		return workspace.Entry{}, &PhaseError{Phase: "persist audio", Err: err}
	}

	rec := workspace.Record{
		ID:        provisionalID,
		CreatedAt: capturedAt,
		Duration:  duration,
		Title:     workspace.TitleProcessing,
	}
	if err := p.store.SaveMetadata(dir, rec); err != nil {
		return workspace.Entry{}, &PhaseError{Phase: "persist audio", Err: err}
	}
	p.log.Info(ctx, "audio saved: %s", dir)

	// Transcribe, against the persisted copy.
	language := languageOverride
	if language == "" {
		language = p.cfg.Transcription.Language
	}
	transcript, err := p.transcriber.Transcribe(ctx, storedAudio, language)
	if err != nil {
		return workspace.Entry{}, &PhaseError{Phase: "transcribe", Err: err}
	}
	if err := p.store.WriteArtifact(dir, workspace.TranscriptFile, transcript); err != nil {
		return workspace.Entry{}, &PhaseError{Phase: "transcribe", Err: err}
	}
	p.log.Info(ctx, "transcript saved (%d chars)", len(transcript))

	// Summarize.
	res, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return workspace.Entry{}, &PhaseError{Phase: "summarize", Err: err}
	}
	if err := p.store.WriteArtifact(dir, workspace.SummaryFile, res.Summary); err != nil {
		return workspace.Entry{}, &PhaseError{Phase: "summarize", Err: err}
	}

	// Finalize: compute the real id from the title and rename last.
	rec.ID = workspace.GenerateID(capturedAt, res.Title)
	rec.Title = res.Title
	rec.SessionID = res.SessionID
	newDir, err := p.store.Finalize(dir, rec)
	if err != nil {
		return workspace.Entry{}, &PhaseError{Phase: "finalize", Err: err}
	}
	p.log.Info(ctx, "record finalized: %s", rec.ID)

	return workspace.Entry{Dir: newDir, Record: rec}, nil
}

// ProbeDuration asks ffprobe for an audio file's duration in whole
// seconds. Best effort: 0 when ffprobe is missing or fails.
func (p *Pipeline) ProbeDuration(ctx context.Context, path string) int {
	out, err := p.exec.Execute(ctx, "ffprobe",
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		path,
	)
	if err != nil {
		p.log.Debug(ctx, "ffprobe failed for %s: %v", path, err)
		return 0
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0
	}
	return int(math.Round(seconds))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
