package main

import (
	"sync"

	"github.com/nguyentantai21042004/rec/internal/agent"
	"github.com/nguyentantai21042004/rec/internal/config"
	"github.com/nguyentantai21042004/rec/internal/logger"
	"github.com/nguyentantai21042004/rec/internal/pipeline"
	"github.com/nguyentantai21042004/rec/internal/summarizer"
	"github.com/nguyentantai21042004/rec/internal/transcriber"
	"github.com/nguyentantai21042004/rec/internal/workspace"
	"github.com/nguyentantai21042004/rec/pkg/executor"
)

// commandContext lazily builds the shared collaborators. Config load
// happens once per invocation, on first use.
type commandContext struct {
	exec executor.Executor

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{exec: executor.New()}
}

// ensureConfig loads the workspace config, failing with the init hint
// when the workspace does not exist yet.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.EnsureExists()
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() logger.Logger {
	if cfg, err := c.ensureConfig(); err == nil {
		return logger.New(cfg.Logging.Level)
	}
	return logger.New("info")
}

func (c *commandContext) store() (*workspace.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return workspace.NewStore(cfg.WorkspacePath), nil
}

func (c *commandContext) agentClient() (*agent.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return agent.NewClient(cfg.WorkspacePath, c.exec), nil
}

// buildPipeline assembles the full processing pipeline, selecting the
// transcription and summarization backends from config up front so a
// missing credential fails before any capture starts.
func (c *commandContext) buildPipeline() (*pipeline.Pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log := c.logger()

	tr, err := transcriber.New(cfg, c.exec, log)
	if err != nil {
		return nil, err
	}

	agentClient, err := c.agentClient()
	if err != nil {
		return nil, err
	}
	sum, err := summarizer.New(cfg, agentClient, log)
	if err != nil {
		return nil, err
	}

	store := workspace.NewStore(cfg.WorkspacePath)
	return pipeline.New(cfg, store, tr, sum, c.exec, log), nil
}
