package mcp

import (
	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ToolSummarizeConversation = "summarize_conversation"
	ToolSelectRelevant        = "select_relevant_messages"
)

// RegisterTools adds the conversation context tools to s.
func RegisterTools(s *server.MCPServer, h *handler) {
	s.AddTool(mcpproto.NewTool(ToolSummarizeConversation,
		mcpproto.WithDescription("Summarize a conversation: message counts, topics, key phrases and intent"),
		mcpproto.WithString("user_id", mcpproto.Required(), mcpproto.Description("Owner of the conversation")),
		mcpproto.WithString("conversation_id", mcpproto.Required(), mcpproto.Description("Conversation UUID")),
	), h.Summarize)

	s.AddTool(mcpproto.NewTool(ToolSelectRelevant,
		mcpproto.WithDescription("Select the most recent messages plus a sample of older ones"),
		mcpproto.WithString("user_id", mcpproto.Required(), mcpproto.Description("Owner of the conversation")),
		mcpproto.WithString("conversation_id", mcpproto.Required(), mcpproto.Description("Conversation UUID")),
		mcpproto.WithNumber("max_messages", mcpproto.Description("Upper bound on returned messages (defaults to the server setting)")),
	), h.SelectRelevant)
}
