package chat

// ChatInput is one user message. An empty ConversationID starts a new conversation.
type ChatInput struct {
	ConversationID string
	Message        string
	IncludeContext bool
}

// ToolCall is the public view of a tool invocation made during the turn.
type ToolCall struct {
	Tool       string
	Parameters map[string]any
}

type ChatOutput struct {
	ConversationID       string
	AssistantMessage     string
	ToolCalls            []ToolCall
	RequiresConfirmation bool
}
