package orchestrator

import (
	"time"

	"task-chat-agent/internal/agent"
	"task-chat-agent/internal/task"
	pkgLog "task-chat-agent/pkg/log"
)

// Config bounds the downstream calls made by Decide.
type Config struct {
	ToolTimeout       time.Duration
	EnrichmentTimeout time.Duration
}

// Orchestrator maps one chat message onto at most one Task Store call.
// It keeps no state between calls.
type Orchestrator struct {
	l         pkgLog.Logger
	tasks     task.UseCase
	profiles  agent.ProfileProvider
	summaries agent.ConversationSummarizer
	cfg       Config
}

// New creates an Orchestrator. profiles and summaries may be nil, which disables
// the matching enrichment.
func New(l pkgLog.Logger, tasks task.UseCase, profiles agent.ProfileProvider, summaries agent.ConversationSummarizer, cfg Config) *Orchestrator {
	if cfg.ToolTimeout <= 0 {
		cfg.ToolTimeout = DefaultToolTimeout
	}
	if cfg.EnrichmentTimeout <= 0 {
		cfg.EnrichmentTimeout = DefaultEnrichmentTimeout
	}
	return &Orchestrator{
		l:         l,
		tasks:     tasks,
		profiles:  profiles,
		summaries: summaries,
		cfg:       cfg,
	}
}
