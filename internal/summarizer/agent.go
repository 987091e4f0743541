package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/rec/internal/agent"
	"github.com/nguyentantai21042004/rec/internal/logger"
)

// agentSummarizer delegates to the Claude Code agent. The conversation
// handle comes back as SessionID so a later `rec edit` can continue it.
type agentSummarizer struct {
	client *agent.Client
	log    logger.Logger
}

func (s *agentSummarizer) Summarize(ctx context.Context, transcript string) (Result, error) {
	res, err := s.client.Prompt(ctx, buildPrompt(transcript))
	if err != nil {
		return Result{}, fmt.Errorf("summarize: %w", err)
	}

	summary, title, err := parseResponse(res.Text)
	if err != nil {
		return Result{}, err
	}

	s.log.Debug(ctx, "agent summarization done, title %q, session %s", title, res.SessionID)
	return Result{Summary: summary, Title: title, SessionID: res.SessionID}, nil
}
