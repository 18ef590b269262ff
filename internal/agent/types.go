package agent

import (
	"context"

	"task-chat-agent/internal/conversation"
	"task-chat-agent/internal/intent"
	"task-chat-agent/internal/model"
	"task-chat-agent/internal/task"
	"task-chat-agent/internal/user"
)

// ToolInvocation records one successful Task Store call made while answering a turn.
type ToolInvocation struct {
	Tool       string
	Parameters intent.Parameters
	Result     ToolResult
}

// ToolResult carries the typed outcome of a Task Store call.
// Exactly one field is set, depending on the tool.
type ToolResult struct {
	Task    *task.Task
	Tasks   []task.Task
	Deleted *task.DeleteOutput
}

// DecideInput is everything the orchestrator needs for one turn.
type DecideInput struct {
	ConversationID string
	Message        string
	History        []conversation.Message
	IncludeContext bool
}

// Decision is the orchestrator's answer: a reply plus zero or one tool invocation.
type Decision struct {
	Intent    intent.Result
	Response  string
	ToolCalls []ToolInvocation
}

// ProfileProvider supplies the advisory user profile used for personalization.
type ProfileProvider interface {
	GetContext(ctx context.Context, userID string) (user.Context, error)
}

// ConversationSummarizer supplies the advisory conversation digest used for personalization.
type ConversationSummarizer interface {
	Summarize(ctx context.Context, sc model.Scope, conversationID string) (conversation.Summary, error)
}
