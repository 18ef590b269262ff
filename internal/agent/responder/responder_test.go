package responder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-chat-agent/internal/agent"
	"task-chat-agent/internal/intent"
	"task-chat-agent/internal/task"
)

func TestGenerate(t *testing.T) {
	desc := "two litres"

	tests := []struct {
		name   string
		intent intent.Intent
		res    agent.ToolResult
		extra  *Context
		want   string
	}{
		{
			name:   "add",
			intent: intent.IntentAdd,
			res:    agent.ToolResult{Task: &task.Task{ID: 1, Title: "buy groceries"}},
			want:   "✅ Created task: buy groceries",
		},
		{
			name:   "list empty",
			intent: intent.IntentList,
			res:    agent.ToolResult{Tasks: []task.Task{}},
			want:   "You don't have any tasks yet.",
		},
		{
			name:   "list",
			intent: intent.IntentList,
			res: agent.ToolResult{Tasks: []task.Task{
				{ID: 2, Title: "walk dog"},
				{ID: 1, Title: "buy milk", IsCompleted: true},
			}},
			want: "Here are your tasks:\n- [2] walk dog\n- [1] buy milk ✓",
		},
		{
			name:   "complete",
			intent: intent.IntentComplete,
			res:    agent.ToolResult{Task: &task.Task{ID: 5, IsCompleted: true}},
			want:   "✅ Marked task 5 as done.",
		},
		{
			name:   "uncomplete",
			intent: intent.IntentComplete,
			res:    agent.ToolResult{Task: &task.Task{ID: 5}},
			want:   "↩️ Marked task 5 as not done.",
		},
		{
			name:   "delete",
			intent: intent.IntentDelete,
			res:    agent.ToolResult{Deleted: &task.DeleteOutput{Success: true, TaskID: 9}},
			want:   "🗑️ Deleted task 9.",
		},
		{
			name:   "update",
			intent: intent.IntentUpdate,
			res:    agent.ToolResult{Task: &task.Task{ID: 3, Title: "buy oat milk"}},
			want:   "✏️ Updated task: buy oat milk",
		},
		{
			name:   "get with description",
			intent: intent.IntentGet,
			res:    agent.ToolResult{Task: &task.Task{ID: 3, Title: "buy milk", Description: &desc}},
			want:   "📋 **buy milk**\ntwo litres",
		},
		{
			name:   "get without description",
			intent: intent.IntentGet,
			res:    agent.ToolResult{Task: &task.Task{ID: 3, Title: "buy milk"}},
			want:   "📋 **buy milk**\nNo description",
		},
		{
			name:   "unknown intent",
			intent: intent.IntentUnknown,
			want:   "Operation completed.",
		},
		{
			name:   "empty result never panics",
			intent: intent.IntentDelete,
			want:   "Operation completed.",
		},
		{
			name:   "personalized",
			intent: intent.IntentAdd,
			res:    agent.ToolResult{Task: &task.Task{Title: "call mum"}},
			extra:  &Context{Name: "Alice"},
			want:   "Hi Alice! ✅ Created task: call mum",
		},
		{
			name:   "default name is not used",
			intent: intent.IntentAdd,
			res:    agent.ToolResult{Task: &task.Task{Title: "call mum"}},
			extra:  &Context{Name: "User"},
			want:   "✅ Created task: call mum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.intent, tt.res, "", tt.extra))
		})
	}
}
