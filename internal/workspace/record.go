package workspace

import (
	"time"

	"github.com/nguyentantai21042004/rec/internal/textutil"
)

// Titles used before a record has earned a real one.
const (
	TitleProcessing = "processing"
	TitleUntitled   = "untitled"
)

// Record is the metadata document persisted as metadata.json inside a
// record directory. Once finalized, ID always equals the directory name.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Duration  int       `json:"duration"` // seconds, wall-clock
	Title     string    `json:"title"`
	SessionID string    `json:"sessionId,omitempty"`
}

// GenerateID builds a record id from the capture start time and a
// title: "20060102-150405-<slug>". Pure; identical inputs always yield
// the identical id. Uniqueness relies on no two sessions starting in
// the same second with the same slug; collisions overwrite.
func GenerateID(t time.Time, title string) string {
	slug := textutil.Slugify(title)
	if slug == "" {
		slug = TitleUntitled
	}
	return t.Format("20060102-150405") + "-" + slug
}
