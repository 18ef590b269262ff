package mcp

import (
	"task-chat-agent/internal/conversation"
	"task-chat-agent/pkg/log"
)

type handler struct {
	l                log.Logger
	uc               conversation.UseCase
	relevantMessages int
}

// New creates the MCP tool handlers for the conversation domain.
// relevantMessages is the select_relevant_messages budget when the caller omits max_messages.
func New(l log.Logger, uc conversation.UseCase, relevantMessages int) *handler {
	return &handler{l: l, uc: uc, relevantMessages: relevantMessages}
}
