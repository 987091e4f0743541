package summarizer

import (
	"errors"
	"strings"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantSummary string
		wantTitle   string
		wantErr     error
	}{
		{
			name:        "summary with slug title on last line",
			raw:         "## Meeting notes\n- point one\n- point two\nteam-standup-notes",
			wantSummary: "## Meeting notes\n- point one\n- point two",
			wantTitle:   "team-standup-notes",
		},
		{
			name:        "raw title needs sanitizing",
			raw:         "Review of third quarter results.\nQ3 Review!! ",
			wantSummary: "Review of third quarter results.",
			wantTitle:   "q3-review",
		},
		{
			name:        "trailing blank lines ignored",
			raw:         "summary body\nproject-review\n\n\n",
			wantSummary: "summary body",
			wantTitle:   "project-review",
		},
		{
			name:        "title sanitizes to nothing",
			raw:         "summary body\n！！！",
			wantSummary: "summary body",
			wantTitle:   "untitled",
		},
		{
			name:        "single line is title only",
			raw:         "standup-meeting",
			wantSummary: "",
			wantTitle:   "standup-meeting",
		},
		{
			name:    "empty response",
			raw:     "",
			wantErr: ErrEmptyResponse,
		},
		{
			name:    "whitespace only response",
			raw:     "  \n\t\n  ",
			wantErr: ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, title, err := parseResponse(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseResponse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseResponse() error = %v", err)
			}
			if summary != tt.wantSummary {
				t.Errorf("summary = %q, want %q", summary, tt.wantSummary)
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
		})
	}
}

func TestBuildPromptEmbedsTranscript(t *testing.T) {
	prompt := buildPrompt("the transcript body")
	if !strings.Contains(prompt, "the transcript body") {
		t.Error("prompt does not embed the transcript")
	}
	if !strings.Contains(prompt, "slug title") {
		t.Error("prompt does not ask for a slug title")
	}
}
