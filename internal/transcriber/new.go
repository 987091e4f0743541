package transcriber

import (
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/rec/internal/config"
	"github.com/nguyentantai21042004/rec/internal/logger"
	"github.com/nguyentantai21042004/rec/pkg/executor"
)

// New selects the transcription backend from configuration.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcription.Provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set; set it before transcribing:\n  export OPENAI_API_KEY='sk-...'")
		}
		return &openAITranscriber{
			model:  cfg.Transcription.Model,
			exec:   exec,
			log:    log,
			client: openai.NewClient(apiKey),
		}, nil
	case "local":
		return &localTranscriber{
			model: cfg.Transcription.Model,
			exec:  exec,
			log:   log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown transcription provider %q", cfg.Transcription.Provider)
	}
}
