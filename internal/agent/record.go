package agent

import (
	"encoding/json"
	"strconv"
	"time"

	"task-chat-agent/internal/task"
)

// TaskRecord is the JSON shape of a task stored with a tool call.
type TaskRecord struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"is_completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// NewTaskRecord renders t with RFC 3339 timestamps.
func NewTaskRecord(t task.Task) TaskRecord {
	r := TaskRecord{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.DueDate != nil {
		d := t.DueDate.UTC().Format(time.RFC3339)
		r.DueDate = &d
	}
	return r
}

// MarshalJSON renders the result the way the tool surface returns it.
func (r ToolResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Deleted != nil:
		return json.Marshal(map[string]any{
			"success": r.Deleted.Success,
			"task_id": strconv.FormatInt(r.Deleted.TaskID, 10),
		})
	case r.Task != nil:
		return json.Marshal(NewTaskRecord(*r.Task))
	case r.Tasks != nil:
		records := make([]TaskRecord, len(r.Tasks))
		for i, t := range r.Tasks {
			records[i] = NewTaskRecord(t)
		}
		return json.Marshal(map[string]any{"tasks": records})
	}
	return []byte("null"), nil
}

// MarshalJSON renders {tool, parameters, result}.
func (ti ToolInvocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Tool       string         `json:"tool"`
		Parameters map[string]any `json:"parameters"`
		Result     ToolResult     `json:"result"`
	}{
		Tool:       ti.Tool,
		Parameters: ti.Parameters.Map(),
		Result:     ti.Result,
	})
}

// MarshalToolCalls renders the tool-call column of an assistant message.
// It returns nil when there is nothing to record.
func MarshalToolCalls(calls []ToolInvocation) (json.RawMessage, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	return json.Marshal(map[string]any{"tools": calls})
}
