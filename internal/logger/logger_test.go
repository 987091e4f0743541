package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLines []string
		skipLines []string
	}{
		{
			name:      "info hides debug",
			level:     "info",
			wantLines: []string{"[INFO]", "[WARN]", "[ERROR]"},
			skipLines: []string{"[DEBUG]"},
		},
		{
			name:      "debug shows everything",
			level:     "debug",
			wantLines: []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"},
		},
		{
			name:      "error hides the rest",
			level:     "error",
			wantLines: []string{"[ERROR]"},
			skipLines: []string{"[DEBUG]", "[INFO]", "[WARN]"},
		},
		{
			name:      "unknown level behaves like info",
			level:     "loud",
			wantLines: []string{"[INFO]"},
			skipLines: []string{"[DEBUG]"},
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.level)

			log.Debug(ctx, "d")
			log.Info(ctx, "i")
			log.Warn(ctx, "w")
			log.Error(ctx, "e")

			out := buf.String()
			for _, want := range tt.wantLines {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %s:\n%s", want, out)
				}
			}
			for _, skip := range tt.skipLines {
				if strings.Contains(out, skip) {
					t.Errorf("output should not contain %s:\n%s", skip, out)
				}
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")
	log.Info(context.Background(), "processed %s in %ds", "audio.wav", 12)

	if !strings.Contains(buf.String(), "processed audio.wav in 12s") {
		t.Errorf("formatted output wrong: %s", buf.String())
	}
}

func TestNop(t *testing.T) {
	// Must not panic and must accept all levels.
	log := Nop()
	ctx := context.Background()
	log.Debug(ctx, "d")
	log.Error(ctx, "e")
}
