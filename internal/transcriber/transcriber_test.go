package transcriber

import (
	"reflect"
	"testing"

	"github.com/nguyentantai21042004/rec/internal/config"
	"github.com/nguyentantai21042004/rec/internal/logger"
	"github.com/nguyentantai21042004/rec/pkg/executor"
)

func TestBuildLocalArgs(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     []string
	}{
		{
			name:     "explicit language hint",
			language: "ja",
			want: []string{
				"run", "--with", "faster-whisper-cli", "faster-whisper",
				"/tmp/audio.wav", "--model", "small", "--language", "ja",
			},
		},
		{
			name:     "auto disables the hint",
			language: "auto",
			want: []string{
				"run", "--with", "faster-whisper-cli", "faster-whisper",
				"/tmp/audio.wav", "--model", "small",
			},
		},
		{
			name:     "empty disables the hint",
			language: "",
			want: []string{
				"run", "--with", "faster-whisper-cli", "faster-whisper",
				"/tmp/audio.wav", "--model", "small",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLocalArgs("/tmp/audio.wav", "small", tt.language)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildLocalArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSelectsBackend(t *testing.T) {
	exec := executor.New()
	log := logger.Nop()

	t.Run("local needs no api key", func(t *testing.T) {
		cfg := config.Default(t.TempDir())
		cfg.Transcription.Provider = "local"
		tr, err := New(cfg, exec, log)
		if err != nil {
			t.Fatalf("New(local): %v", err)
		}
		if _, ok := tr.(*localTranscriber); !ok {
			t.Errorf("New(local) = %T, want *localTranscriber", tr)
		}
	})

	t.Run("openai without api key is an actionable error", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		cfg := config.Default(t.TempDir())
		if _, err := New(cfg, exec, log); err == nil {
			t.Error("New(openai) without key should fail")
		}
	})

	t.Run("openai with api key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		cfg := config.Default(t.TempDir())
		tr, err := New(cfg, exec, log)
		if err != nil {
			t.Fatalf("New(openai): %v", err)
		}
		if _, ok := tr.(*openAITranscriber); !ok {
			t.Errorf("New(openai) = %T, want *openAITranscriber", tr)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := config.Default(t.TempDir())
		cfg.Transcription.Provider = "azure"
		if _, err := New(cfg, exec, log); err == nil {
			t.Error("New(azure) should fail")
		}
	})
}
