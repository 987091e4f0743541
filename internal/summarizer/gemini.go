package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/rec/internal/logger"
)

// geminiSummarizer calls the Gemini API directly. Unlike the agent
// backend it keeps no conversation, so SessionID stays empty.
type geminiSummarizer struct {
	apiKey string
	model  string
	log    logger.Logger
}

func (s *geminiSummarizer) Summarize(ctx context.Context, transcript string) (Result, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return Result{}, fmt.Errorf("create gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(buildPrompt(transcript)), nil)
	if err != nil {
		return Result{}, fmt.Errorf("gemini generate content: %w", err)
	}

	var text string
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
	}
	if text == "" {
		return Result{}, ErrEmptyResponse
	}

	summary, title, err := parseResponse(text)
	if err != nil {
		return Result{}, err
	}

	s.log.Debug(ctx, "gemini summarization done, title %q", title)
	return Result{Summary: summary, Title: title}, nil
}
