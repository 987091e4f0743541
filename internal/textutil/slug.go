package textutil

import "strings"

const maxSlugLen = 40

// Slugify reduces free text to an identifier-safe slug: lowercase,
// [a-z0-9-] only, repeated hyphens collapsed, trimmed, capped at 40
// characters. Returns "" when nothing survives; callers substitute
// their own placeholder.
//
// Record ids and summary titles both go through this function so the
// two can never diverge.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	if len(out) > maxSlugLen {
		out = strings.Trim(out[:maxSlugLen], "-")
	}
	return out
}
