package textutil

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "team-standup-notes", "team-standup-notes"},
		{"uppercase and punctuation", "Q3 Review!! ", "q3-review"},
		{"collapse repeats", "a -- b", "a-b"},
		{"leading and trailing junk", "  ***meeting***  ", "meeting"},
		{"unicode replaced", "会議メモ", ""},
		{"mixed unicode and ascii", "メモ weekly sync", "weekly-sync"},
		{"empty", "", ""},
		{"only separators", "-- -- --", ""},
		{
			"truncated to 40",
			"this-is-a-very-long-title-that-keeps-going-and-going-forever",
			"this-is-a-very-long-title-that-keeps-goi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if len(got) > 40 {
				t.Errorf("Slugify(%q) length %d exceeds 40", tt.input, len(got))
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Q3 Review!! ",
		"team-standup-notes",
		"日本語のタイトル with latin",
		strings.Repeat("x-", 60),
		"--a--b--",
		"",
	}

	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
