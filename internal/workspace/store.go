package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Artifact file names inside a record directory.
const (
	MetadataFile   = "metadata.json"
	AudioFile      = "audio.wav"
	TranscriptFile = "transcript.md"
	SummaryFile    = "summary.md"
)

// ErrNotFound reports a prefix that matched no record.
var ErrNotFound = errors.New("no recording found")

// AmbiguousPrefixError reports a prefix matching more than one record.
// The lookup never silently picks one.
type AmbiguousPrefixError struct {
	Prefix string
	IDs    []string
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("ambiguous id prefix %q, matches: %s", e.Prefix, strings.Join(e.IDs, ", "))
}

// Entry pairs a record with the directory that owns it.
type Entry struct {
	Dir    string
	Record Record
}

// Store is the directory-backed record repository. The workspace tree
// is the database: one directory per record, self-describing via its
// metadata document.
type Store struct {
	root string
}

// NewStore creates a Store over the given workspace root.
func NewStore(workspacePath string) *Store {
	return &Store{root: workspacePath}
}

// Root returns the workspace path the store operates on.
func (s *Store) Root() string {
	return s.root
}

// RecordsDir returns the directory holding all record directories.
func (s *Store) RecordsDir() string {
	return filepath.Join(s.root, "records")
}

// CreateRecordDir creates (with parents) the directory for an id and
// returns its path.
func (s *Store) CreateRecordDir(id string) (string, error) {
	dir := filepath.Join(s.RecordsDir(), id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create record dir: %w", err)
	}
	return dir, nil
}

// SaveMetadata writes the metadata document, replacing any previous
// content entirely.
func (s *Store) SaveMetadata(dir string, rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, MetadataFile), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	return nil
}

// WriteArtifact writes a text artifact (transcript.md, summary.md) with
// a trailing newline.
func (s *Store) WriteArtifact(dir, name, text string) error {
	content := strings.TrimRight(text, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ReadArtifact reads a text artifact from a record directory.
func (s *Store) ReadArtifact(dir, name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// List returns all readable records sorted by creation time, newest
// first. Directories without a parseable metadata document are skipped
// so one corrupt record never breaks the listing.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.RecordsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list records: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		dir := filepath.Join(s.RecordsDir(), de.Name())
		raw, err := os.ReadFile(filepath.Join(dir, MetadataFile))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		entries = append(entries, Entry{Dir: dir, Record: rec})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Record.CreatedAt.After(entries[j].Record.CreatedAt)
	})
	return entries, nil
}

// FindByPrefix resolves an id prefix to exactly one record. Zero
// matches yields ErrNotFound, more than one an AmbiguousPrefixError
// naming every candidate.
func (s *Store) FindByPrefix(prefix string) (Entry, error) {
	entries, err := s.List()
	if err != nil {
		return Entry{}, err
	}

	var matches []Entry
	for _, e := range entries {
		if strings.HasPrefix(e.Record.ID, prefix) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return Entry{}, fmt.Errorf("%w matching %q", ErrNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.Record.ID
		}
		sort.Strings(ids)
		return Entry{}, &AmbiguousPrefixError{Prefix: prefix, IDs: ids}
	}
}

// Finalize renames a provisional record directory to its final id and
// rewrites the metadata. The rename is a no-op when old and new names
// coincide. This must stay the pipeline's last write: a crash earlier
// leaves a recoverable provisional record instead of a half-renamed
// one. The rename-then-rewrite pair itself is not transactional; a
// crash between the two leaves a directory whose metadata still holds
// the provisional id.
func (s *Store) Finalize(oldDir string, rec Record) (string, error) {
	newDir := filepath.Join(s.RecordsDir(), rec.ID)
	if oldDir != newDir {
		if err := os.Rename(oldDir, newDir); err != nil {
			return "", fmt.Errorf("finalize rename: %w", err)
		}
	}
	if err := s.SaveMetadata(newDir, rec); err != nil {
		return "", err
	}
	return newDir, nil
}
