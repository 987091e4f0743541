// Package agent talks to the Claude Code CLI, the external coding
// agent the workspace delegates reasoning to. Prompts run inside the
// workspace directory so the agent can read records and CLAUDE.md.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/nguyentantai21042004/rec/pkg/executor"
)

// ErrClaudeNotFound means the agent binary is not installed.
var ErrClaudeNotFound = errors.New("claude not found; install Claude Code first: https://docs.anthropic.com/en/docs/claude-code")

// ErrEmptyResult means the agent returned no result text.
var ErrEmptyResult = errors.New("no response from claude")

// Result is one completed agent exchange. SessionID is the opaque
// conversation handle, usable for later continuation.
type Result struct {
	Text      string
	SessionID string
}

// Client runs the agent against one workspace.
type Client struct {
	workspacePath string
	exec          executor.Executor
}

// NewClient creates a Client rooted at the workspace.
func NewClient(workspacePath string, exec executor.Executor) *Client {
	return &Client{workspacePath: workspacePath, exec: exec}
}

// Prompt sends a read-only prompt and returns the agent's result.
func (c *Client) Prompt(ctx context.Context, prompt string) (Result, error) {
	return c.run(ctx,
		"-p", prompt,
		"--output-format", "json",
		"--allowed-tools", "WebSearch,WebFetch,Read,Grep,Glob",
	)
}

// Edit sends a prompt that may rewrite files in the workspace.
func (c *Client) Edit(ctx context.Context, prompt string) (Result, error) {
	return c.run(ctx,
		"-p", prompt,
		"--output-format", "json",
		"--permission-mode", "acceptEdits",
		"--allowed-tools", "Read,Edit,Write,Glob,Grep",
	)
}

func (c *Client) run(ctx context.Context, args ...string) (Result, error) {
	out, err := c.exec.ExecuteInDir(ctx, c.workspacePath, "claude", args...)
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return Result{}, ErrClaudeNotFound
		}
		return Result{}, fmt.Errorf("claude: %w", err)
	}
	return parseResponse(out)
}

type cliResponse struct {
	Result    string `json:"result"`
	SessionID string `json:"session_id"`
}

func parseResponse(out string) (Result, error) {
	var resp cliResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		return Result{}, fmt.Errorf("parse claude response: %w", err)
	}
	text := strings.TrimSpace(resp.Result)
	if text == "" {
		return Result{}, ErrEmptyResult
	}
	return Result{Text: text, SessionID: resp.SessionID}, nil
}

// Passthrough hands the terminal to the agent (rec chat) and returns
// its exit code verbatim.
func (c *Client) Passthrough(ctx context.Context, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, "claude", args...)
	cmd.Dir = c.workspacePath
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return 0, ErrClaudeNotFound
	}
	return 0, err
}
