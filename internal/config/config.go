package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config is the workspace configuration stored at <workspace>/config.json.
// The pipeline treats it as an immutable snapshot per run; only `rec init`
// and `rec config set` write it.
type Config struct {
	WorkspacePath string              `json:"workspacePath"`
	Recording     RecordingConfig     `json:"recording"`
	Transcription TranscriptionConfig `json:"transcription"`
	Summary       SummaryConfig       `json:"summary"`
	Logging       LoggingConfig       `json:"logging"`
}

type RecordingConfig struct {
	DeviceIndex int    `json:"deviceIndex"`
	Codec       string `json:"codec"`
	// SampleRate and Channels of 0 mean "resolve from the device registry".
	SampleRate int `json:"sampleRate"`
	Channels   int `json:"channels"`
}

type TranscriptionConfig struct {
	Provider string `json:"provider"` // "openai" or "local"
	Model    string `json:"model"`
	Language string `json:"language"` // "auto" disables the hint
}

type SummaryConfig struct {
	Backend string `json:"backend"` // "agent" or "gemini"
	Model   string `json:"model"`   // gemini backend only
}

type LoggingConfig struct {
	Level string `json:"level"`
}

// Default returns the configuration written by `rec init` before the
// wizard applies its overrides.
func Default(workspacePath string) *Config {
	return &Config{
		WorkspacePath: workspacePath,
		Recording: RecordingConfig{
			DeviceIndex: 0,
			Codec:       "pcm_s16le",
		},
		Transcription: TranscriptionConfig{
			Provider: "openai",
			Model:    "whisper-1",
			Language: "ja",
		},
		Summary: SummaryConfig{
			Backend: "agent",
			Model:   "gemini-2.5-flash",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate fills zero values with defaults and rejects unknown selectors.
func (c *Config) Validate() error {
	if c.Recording.Codec == "" {
		c.Recording.Codec = "pcm_s16le"
	}
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = "openai"
	}
	if c.Transcription.Provider != "openai" && c.Transcription.Provider != "local" {
		return fmt.Errorf("transcription.provider must be \"openai\" or \"local\", got %q", c.Transcription.Provider)
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = "whisper-1"
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "auto"
	}
	if c.Summary.Backend == "" {
		c.Summary.Backend = "agent"
	}
	if c.Summary.Backend != "agent" && c.Summary.Backend != "gemini" {
		return fmt.Errorf("summary.backend must be \"agent\" or \"gemini\", got %q", c.Summary.Backend)
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	return nil
}

// DefaultWorkspacePath is ~/.rec unless REC_WORKSPACE points elsewhere.
func DefaultWorkspacePath() string {
	if env := os.Getenv("REC_WORKSPACE"); env != "" {
		return expandHome(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rec"
	}
	return filepath.Join(home, ".rec")
}

// ResolveWorkspacePath picks the workspace for a command: an explicit
// argument wins, then REC_WORKSPACE, then ~/.rec.
func ResolveWorkspacePath(input string) string {
	if input != "" {
		abs, err := filepath.Abs(expandHome(input))
		if err != nil {
			return expandHome(input)
		}
		return abs
	}
	return DefaultWorkspacePath()
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p[1:], string(filepath.Separator)))
}

// Path returns the config file location for a workspace.
func Path(workspacePath string) string {
	return filepath.Join(workspacePath, "config.json")
}

// Load reads and validates <workspace>/config.json.
func Load(workspacePath string) (*Config, error) {
	raw, err := os.ReadFile(Path(workspacePath))
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.WorkspacePath = workspacePath
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config as pretty-printed JSON with a trailing newline.
func Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(cfg.WorkspacePath), append(data, '\n'), 0644)
}

// EnsureExists loads the workspace config or tells the user to init.
func EnsureExists() (*Config, error) {
	ws := DefaultWorkspacePath()
	cfg, err := Load(ws)
	if err != nil {
		return nil, fmt.Errorf("workspace not initialized at %s; run \"rec init\" first", ws)
	}
	return cfg, nil
}

// Set updates a single dotted key, coercing the value to the field's
// type. Unknown keys are rejected so typos never silently add fields.
func (c *Config) Set(key, value string) error {
	atoi := func() (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("config key %s expects a number, got %q", key, value)
		}
		return n, nil
	}

	var err error
	switch key {
	case "recording.deviceIndex":
		c.Recording.DeviceIndex, err = atoi()
	case "recording.codec":
		c.Recording.Codec = value
	case "recording.sampleRate":
		c.Recording.SampleRate, err = atoi()
	case "recording.channels":
		c.Recording.Channels, err = atoi()
	case "transcription.provider":
		c.Transcription.Provider = value
	case "transcription.model":
		c.Transcription.Model = value
	case "transcription.language":
		c.Transcription.Language = value
	case "summary.backend":
		c.Summary.Backend = value
	case "summary.model":
		c.Summary.Model = value
	case "logging.level":
		c.Logging.Level = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	if err != nil {
		return err
	}
	return c.Validate()
}
