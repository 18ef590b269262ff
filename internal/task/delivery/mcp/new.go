package mcp

import (
	"task-chat-agent/internal/task"
	"task-chat-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates the MCP tool handlers for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
