package summarizer

import (
	"context"
	"errors"
)

// ErrEmptyResponse means the reasoning backend returned nothing to
// split into summary and title.
var ErrEmptyResponse = errors.New("empty response from summarization backend")

// Result is a parsed summarization response. Title is already
// sanitized to a slug. SessionID is set only by backends that keep a
// resumable conversation.
type Result struct {
	Summary   string
	Title     string
	SessionID string
}

// Summarizer produces a markdown summary and a slug title for a
// transcript. Selected once from configuration at pipeline start.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (Result, error)
}
