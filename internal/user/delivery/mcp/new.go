package mcp

import (
	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"task-chat-agent/internal/user"
	"task-chat-agent/pkg/log"
)

const ToolGetUserContext = "get_user_context"

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates the MCP tool handler for user profiles.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

// RegisterTools adds get_user_context to s.
func RegisterTools(s *server.MCPServer, h *handler) {
	s.AddTool(mcpproto.NewTool(ToolGetUserContext,
		mcpproto.WithDescription("Get the user's profile, preferences and account status"),
		mcpproto.WithString("user_id", mcpproto.Required(), mcpproto.Description("User to look up")),
	), h.GetUserContext)
}
