package transcriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/rec/internal/logger"
	"github.com/nguyentantai21042004/rec/pkg/executor"
)

// localTranscriber runs faster-whisper on the machine via uv, so no
// audio ever leaves the host. The engine handles format conversion
// itself.
type localTranscriber struct {
	model string
	exec  executor.Executor
	log   logger.Logger
}

func buildLocalArgs(audioPath, model, language string) []string {
	args := []string{
		"run",
		"--with", "faster-whisper-cli",
		"faster-whisper",
		audioPath,
		"--model", model,
	}
	if language != "" && language != "auto" {
		args = append(args, "--language", language)
	}
	return args
}

func (t *localTranscriber) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	t.log.Debug(ctx, "running local whisper model %s on %s", t.model, audioPath)

	out, err := t.exec.Execute(ctx, "uv", buildLocalArgs(audioPath, t.model, language)...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	return strings.TrimSpace(out), nil
}
