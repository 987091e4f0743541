package summarizer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/rec/internal/textutil"
)

const summaryPrompt = `You have the following transcript of an audio recording. Do two things:

1. Write a concise summary in the same language as the transcript. Use markdown formatting.
2. On the very last line, output ONLY a short English slug title (lowercase, hyphens, no spaces, max 40 chars) that describes the topic. Example: standup-meeting, project-review, interview-notes

Transcript:
%s`

func buildPrompt(transcript string) string {
	return fmt.Sprintf(summaryPrompt, transcript)
}

// parseResponse splits a raw backend response: the last non-empty line
// is the title candidate, everything before it is the summary. The
// title goes through the shared slug sanitizer, falling back to
// "untitled" when nothing survives.
func parseResponse(raw string) (summary, title string, err error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	last := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			last = i
			break
		}
	}
	if last == -1 {
		return "", "", ErrEmptyResponse
	}

	title = textutil.Slugify(lines[last])
	if title == "" {
		title = "untitled"
	}

	summary = strings.TrimSpace(strings.Join(lines[:last], "\n"))
	return summary, title, nil
}
