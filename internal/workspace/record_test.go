package workspace

import (
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain slug", "team-standup-notes", "20250314-150926-team-standup-notes"},
		{"needs sanitizing", "Q3 Review!! ", "20250314-150926-q3-review"},
		{"processing placeholder", TitleProcessing, "20250314-150926-processing"},
		{"empty title falls back", "", "20250314-150926-untitled"},
		{"all invalid falls back", "！！！", "20250314-150926-untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateID(ts, tt.title); got != tt.want {
				t.Errorf("GenerateID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateIDDeterministic(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	first := GenerateID(ts, "Weekly Sync")
	for i := 0; i < 5; i++ {
		if got := GenerateID(ts, "Weekly Sync"); got != first {
			t.Fatalf("GenerateID not deterministic: %q vs %q", got, first)
		}
	}
}
