package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another pipeline run holds the workspace.
var ErrLocked = errors.New("another rec pipeline is already running against this workspace")

// Lock takes the workspace-wide pipeline lock and returns a release
// function. The lock is advisory and scoped to one pipeline run; a
// second concurrent run fails fast with ErrLocked rather than racing
// on the records tree.
func (s *Store) Lock() (func(), error) {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return nil, fmt.Errorf("prepare workspace: %w", err)
	}

	fl := flock.New(filepath.Join(s.root, "pipeline.lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return func() {
		_ = fl.Unlock()
	}, nil
}
