package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-chat-agent/config/sqlite/sqlitetest"
	"task-chat-agent/internal/user"
	userSqlite "task-chat-agent/internal/user/repository/sqlite"
	"task-chat-agent/internal/user/usecase"
	"task-chat-agent/pkg/log"
	"task-chat-agent/pkg/mcptool"
)

func TestGetUserContext(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()
	uc := usecase.New(l, userSqlite.New(sqlitetest.New(t), l))
	h := New(l, uc)

	_, err := uc.CreateUser(ctx, user.CreateUserInput{ID: "alice", Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	call := func(userID string) *mcpproto.CallToolResult {
		var req mcpproto.CallToolRequest
		req.Params.Arguments = map[string]any{"user_id": userID}
		res, err := h.GetUserContext(ctx, req)
		require.NoError(t, err)
		return res
	}

	t.Run("found", func(t *testing.T) {
		res := call("alice")
		require.False(t, res.IsError, mcptool.Text(res))

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(mcptool.Text(res)), &got))
		assert.Equal(t, "Alice", got["name"])
		assert.Equal(t, "alice@example.com", got["email"])
		assert.Equal(t, map[string]any{"timezone": "UTC", "language": "en", "task_notification": true}, got["preferences"])
		assert.Equal(t, map[string]any{"user_type": "individual", "status": "active"}, got["account"])
	})

	tests := []struct {
		name   string
		userID string
		code   int
	}{
		{"unknown user", "bob", 404},
		{"missing user", "", 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := call(tt.userID)
			require.True(t, res.IsError)
			var body mcptool.ErrorBody
			require.NoError(t, json.Unmarshal([]byte(mcptool.Text(res)), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
