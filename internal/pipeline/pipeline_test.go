package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/rec/internal/config"
	"github.com/nguyentantai21042004/rec/internal/logger"
	"github.com/nguyentantai21042004/rec/internal/summarizer"
	"github.com/nguyentantai21042004/rec/internal/workspace"
	"github.com/nguyentantai21042004/rec/pkg/executor"
)

type fakeTranscriber struct {
	text        string
	err         error
	gotLanguage string
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	f.gotLanguage = language
	if f.err != nil {
		return "", f.err
	}
	if _, err := os.Stat(audioPath); err != nil {
		return "", err
	}
	return f.text, nil
}

type fakeSummarizer struct {
	result summarizer.Result
	err    error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript string) (summarizer.Result, error) {
	if f.err != nil {
		return summarizer.Result{}, f.err
	}
	return f.result, nil
}

func newTestPipeline(t *testing.T, tr *fakeTranscriber, sum *fakeSummarizer) (*Pipeline, *workspace.Store) {
	t.Helper()
	ws := t.TempDir()
	cfg := config.Default(ws)
	store := workspace.NewStore(ws)
	p := New(cfg, store, tr, sum, executor.New(), logger.Nop())
	return p, store
}

func captureFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.wav")
	if err := os.WriteFile(path, []byte("RIFF-fake-audio"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessAudioFullRun(t *testing.T) {
	tr := &fakeTranscriber{text: "hello from the meeting"}
	sum := &fakeSummarizer{result: summarizer.Result{
		Summary:   "## Notes\n- hello",
		Title:     "team-standup-notes",
		SessionID: "sess-9",
	}}
	p, store := newTestPipeline(t, tr, sum)

	capturedAt := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	entry, err := p.ProcessAudio(context.Background(), captureFixture(t), 30, capturedAt, "")
	if err != nil {
		t.Fatalf("ProcessAudio(): %v", err)
	}

	wantID := "20250314-150926-team-standup-notes"
	if entry.Record.ID != wantID {
		t.Errorf("ID = %s, want %s", entry.Record.ID, wantID)
	}
	if filepath.Base(entry.Dir) != wantID {
		t.Errorf("final dir %s does not match id", entry.Dir)
	}
	if entry.Record.SessionID != "sess-9" {
		t.Errorf("SessionID = %q", entry.Record.SessionID)
	}

	for _, name := range []string{workspace.AudioFile, workspace.TranscriptFile, workspace.SummaryFile, workspace.MetadataFile} {
		if _, err := os.Stat(filepath.Join(entry.Dir, name)); err != nil {
			t.Errorf("artifact %s missing: %v", name, err)
		}
	}

	transcript, err := store.ReadArtifact(entry.Dir, workspace.TranscriptFile)
	if err != nil {
		t.Fatal(err)
	}
	if transcript != "hello from the meeting\n" {
		t.Errorf("transcript = %q", transcript)
	}

	// No provisional leftovers.
	entries, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("List() = %d entries, want 1", len(entries))
	}
}

func TestProcessAudioTranscriptionFailureKeepsAudio(t *testing.T) {
	tr := &fakeTranscriber{err: errors.New("engine down")}
	p, store := newTestPipeline(t, tr, &fakeSummarizer{})

	capturedAt := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	_, err := p.ProcessAudio(context.Background(), captureFixture(t), 30, capturedAt, "")

	var phaseErr *PhaseError
	if !errors.As(err, &phaseErr) || phaseErr.Phase != "transcribe" {
		t.Fatalf("error = %v, want transcribe PhaseError", err)
	}

	// The provisional record survives with the audio, and only the audio.
	dir := filepath.Join(store.RecordsDir(), "20250314-150926-processing")
	if _, err := os.Stat(filepath.Join(dir, workspace.AudioFile)); err != nil {
		t.Errorf("audio artifact missing after failure: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, workspace.TranscriptFile)); !os.IsNotExist(err) {
		t.Error("transcript should not exist after transcription failure")
	}
	if _, err := os.Stat(filepath.Join(dir, workspace.SummaryFile)); !os.IsNotExist(err) {
		t.Error("summary should not exist after transcription failure")
	}

	entries, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Record.Title != workspace.TitleProcessing {
		t.Errorf("provisional record not listed: %+v", entries)
	}
}

func TestProcessAudioSummarizationFailureKeepsTranscript(t *testing.T) {
	tr := &fakeTranscriber{text: "transcript body"}
	sum := &fakeSummarizer{err: summarizer.ErrEmptyResponse}
	p, store := newTestPipeline(t, tr, sum)

	capturedAt := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	_, err := p.ProcessAudio(context.Background(), captureFixture(t), 30, capturedAt, "")

	var phaseErr *PhaseError
	if !errors.As(err, &phaseErr) || phaseErr.Phase != "summarize" {
		t.Fatalf("error = %v, want summarize PhaseError", err)
	}
	if !errors.Is(err, summarizer.ErrEmptyResponse) {
		t.Errorf("underlying cause not preserved: %v", err)
	}

	// Transcript was written before summarization was attempted.
	dir := filepath.Join(store.RecordsDir(), "20250314-150926-processing")
	raw, readErr := store.ReadArtifact(dir, workspace.TranscriptFile)
	if readErr != nil {
		t.Fatalf("transcript missing after summarization failure: %v", readErr)
	}
	if !strings.Contains(raw, "transcript body") {
		t.Errorf("transcript content = %q", raw)
	}
}

func TestProcessAudioLanguageResolution(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		tr := &fakeTranscriber{text: "t"}
		p, _ := newTestPipeline(t, tr, &fakeSummarizer{result: summarizer.Result{Title: "x"}})
		_, err := p.ProcessAudio(context.Background(), captureFixture(t), 1, time.Now(), "en")
		if err != nil {
			t.Fatal(err)
		}
		if tr.gotLanguage != "en" {
			t.Errorf("language = %q, want en", tr.gotLanguage)
		}
	})

	t.Run("config language by default", func(t *testing.T) {
		tr := &fakeTranscriber{text: "t"}
		p, _ := newTestPipeline(t, tr, &fakeSummarizer{result: summarizer.Result{Title: "x"}})
		_, err := p.ProcessAudio(context.Background(), captureFixture(t), 1, time.Now(), "")
		if err != nil {
			t.Fatal(err)
		}
		if tr.gotLanguage != "ja" {
			t.Errorf("language = %q, want config default ja", tr.gotLanguage)
		}
	})
}

func TestProcessAudioReleasesLock(t *testing.T) {
	tr := &fakeTranscriber{err: errors.New("boom")}
	p, store := newTestPipeline(t, tr, &fakeSummarizer{})

	_, _ = p.ProcessAudio(context.Background(), captureFixture(t), 1, time.Now(), "")

	// Failure path must release the workspace lock.
	release, err := store.Lock()
	if err != nil {
		t.Fatalf("workspace still locked after failed run: %v", err)
	}
	release()
}
