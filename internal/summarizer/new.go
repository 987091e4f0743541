package summarizer

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/rec/internal/agent"
	"github.com/nguyentantai21042004/rec/internal/config"
	"github.com/nguyentantai21042004/rec/internal/logger"
)

// New selects the summarization backend from configuration. The agent
// backend delegates to Claude Code inside the workspace; the gemini
// backend calls the Gemini API directly.
func New(cfg *config.Config, agentClient *agent.Client, log logger.Logger) (Summarizer, error) {
	switch cfg.Summary.Backend {
	case "agent":
		return &agentSummarizer{client: agentClient, log: log}, nil
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set; set it before summarizing:\n  export GEMINI_API_KEY='...'")
		}
		return &geminiSummarizer{
			apiKey: apiKey,
			model:  cfg.Summary.Model,
			log:    log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown summary backend %q", cfg.Summary.Backend)
	}
}
