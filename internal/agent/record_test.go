package agent

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-chat-agent/internal/intent"
	"task-chat-agent/internal/task"
)

func TestMarshalToolCalls(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	desc := "milk and eggs"

	calls := []ToolInvocation{{
		Tool:       intent.ToolAddTask,
		Parameters: intent.Parameters{UserID: "u1", Title: "buy groceries"},
		Result: ToolResult{Task: &task.Task{
			ID: 7, UserID: "u1", Title: "buy groceries", Description: &desc, CreatedAt: created, UpdatedAt: created,
		}},
	}}

	raw, err := MarshalToolCalls(calls)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tools":[{
		"tool":"add_task",
		"parameters":{"user_id":"u1","title":"buy groceries"},
		"result":{"id":7,"user_id":"u1","title":"buy groceries","description":"milk and eggs",
			"is_completed":false,"priority":null,"due_date":null,
			"created_at":"2025-01-02T03:04:05Z","updated_at":"2025-01-02T03:04:05Z"}
	}]}`, string(raw))

	raw, err = MarshalToolCalls(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestToolResultMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(ToolResult{Deleted: &task.DeleteOutput{Success: true, TaskID: 3}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"task_id":"3"}`, string(raw))

	raw, err = json.Marshal(ToolResult{Tasks: []task.Task{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tasks":[]}`, string(raw))

	raw, err = json.Marshal(ToolResult{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}
