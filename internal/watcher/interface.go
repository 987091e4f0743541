package watcher

import "context"

// Watcher monitors a drop directory and feeds new audio files to its
// handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one dropped audio file.
type Handler func(ctx context.Context, path string) error
