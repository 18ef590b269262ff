// Package mcpserver builds the stdio tool server that exposes the task store,
// user profiles and conversation context to MCP clients.
package mcpserver

import (
	"database/sql"
	"errors"

	"github.com/mark3labs/mcp-go/server"

	convMCP "task-chat-agent/internal/conversation/delivery/mcp"
	convRepo "task-chat-agent/internal/conversation/repository/sqlite"
	convUC "task-chat-agent/internal/conversation/usecase"
	taskMCP "task-chat-agent/internal/task/delivery/mcp"
	taskRepo "task-chat-agent/internal/task/repository/sqlite"
	taskUC "task-chat-agent/internal/task/usecase"
	userMCP "task-chat-agent/internal/user/delivery/mcp"
	userRepo "task-chat-agent/internal/user/repository/sqlite"
	userUC "task-chat-agent/internal/user/usecase"
	"task-chat-agent/pkg/datemath"
	"task-chat-agent/pkg/log"
)

// Config is the dependency bag passed to New().
type Config struct {
	Name     string
	Version  string
	DB       *sql.DB
	DateMath *datemath.Parser

	// RelevantMessages is the default max_messages for select_relevant_messages.
	RelevantMessages int
}

// New creates the MCP server with every tool registered.
func New(l log.Logger, cfg Config) (*server.MCPServer, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.DB == nil {
		return nil, errors.New("db is required")
	}
	if cfg.DateMath == nil {
		return nil, errors.New("date parser is required")
	}

	s := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	tasks := taskUC.New(l, taskRepo.New(cfg.DB, l), cfg.DateMath)
	taskMCP.RegisterTools(s, taskMCP.New(l, tasks))

	users := userUC.New(l, userRepo.New(cfg.DB, l))
	userMCP.RegisterTools(s, userMCP.New(l, users))

	conversations := convUC.New(l, convRepo.New(cfg.DB, l))
	convMCP.RegisterTools(s, convMCP.New(l, conversations, cfg.RelevantMessages))

	return s, nil
}

// Serve runs s over stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
