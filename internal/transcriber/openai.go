package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/rec/internal/logger"
	"github.com/nguyentantai21042004/rec/pkg/executor"
)

// openAITranscriber submits audio to the Whisper API. The API wants
// mono 16-bit PCM at 16 kHz, so the captured file is transcoded into a
// temporary WAV first and the temp file removed whatever happens.
type openAITranscriber struct {
	model  string
	exec   executor.Executor
	log    logger.Logger
	client *openai.Client
}

func (t *openAITranscriber) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	wavPath, err := t.convertToWhisperFormat(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("%w: convert audio: %v", ErrTranscriptionFailed, err)
	}
	defer func() {
		if rmErr := os.Remove(wavPath); rmErr != nil {
			t.log.Warn(ctx, "failed to remove temp audio %s: %v", wavPath, rmErr)
		}
	}()

	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: wavPath,
	}
	if language != "" && language != "auto" {
		req.Language = language
	}

	t.log.Debug(ctx, "submitting %s to whisper model %s", wavPath, t.model)
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}

	return strings.TrimSpace(resp.Text), nil
}

func (t *openAITranscriber) convertToWhisperFormat(ctx context.Context, audioPath string) (string, error) {
	tmp, err := os.CreateTemp("", "rec-whisper-*.wav")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		return "", err
	}

	_, err = t.exec.Execute(ctx, "ffmpeg",
		"-i", audioPath,
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		tmpPath,
	)
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}
