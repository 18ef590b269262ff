package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestExtractParameters(t *testing.T) {
	const uid = "user-1"

	tests := []struct {
		name    string
		intent  Intent
		message string
		want    Parameters
	}{
		{
			name:    "add from pattern",
			intent:  IntentAdd,
			message: "add buy milk at the store",
			want:    Parameters{UserID: uid, Title: "buy milk at the store"},
		},
		{
			name:    "add pattern lower-cases the title",
			intent:  IntentAdd,
			message: "  Add Buy Milk ",
			want:    Parameters{UserID: uid, Title: "buy milk"},
		},
		{
			name:    "add keeps the word task after add",
			intent:  IntentAdd,
			message: "add task buy milk",
			want:    Parameters{UserID: uid, Title: "task buy milk"},
		},
		{
			name:    "new task pattern",
			intent:  IntentAdd,
			message: "new task Call Mom",
			want:    Parameters{UserID: uid, Title: "call mom"},
		},
		{
			name:    "task to pattern",
			intent:  IntentAdd,
			message: "task to water plants",
			want:    Parameters{UserID: uid, Title: "water plants"},
		},
		{
			name:    "keyword fallback keeps original casing",
			intent:  IntentAdd,
			message: "Could you Add Milk",
			want:    Parameters{UserID: uid, Title: "Milk"},
		},
		{
			name:    "keyword fallback skips empty suffixes",
			intent:  IntentAdd,
			message: "make a task to remember",
			want:    Parameters{UserID: uid, Title: "to remember"},
		},
		{
			name:    "keyword fallback defaults title",
			intent:  IntentAdd,
			message: "please create",
			want:    Parameters{UserID: uid, Title: DefaultTitle},
		},
		{
			name:    "no keyword defaults title",
			intent:  IntentAdd,
			message: "i need to call mom",
			want:    Parameters{UserID: uid, Title: DefaultTitle},
		},
		{
			name:    "list includes completed",
			intent:  IntentList,
			message: "show all tasks",
			want:    Parameters{UserID: uid, IncludeCompleted: boolPtr(true)},
		},
		{
			name:    "list mentioning completed excludes them",
			intent:  IntentList,
			message: "list Completed tasks",
			want:    Parameters{UserID: uid, IncludeCompleted: boolPtr(false)},
		},
		{
			name:    "complete",
			intent:  IntentComplete,
			message: "complete task 5",
			want:    Parameters{UserID: uid, TaskID: "5", Completed: boolPtr(true)},
		},
		{
			name:    "uncomplete",
			intent:  IntentComplete,
			message: "uncomplete task 12",
			want:    Parameters{UserID: uid, TaskID: "12", Completed: boolPtr(false)},
		},
		{
			name:    "complete without id",
			intent:  IntentComplete,
			message: "mark as done",
			want:    Parameters{UserID: uid, Completed: boolPtr(true)},
		},
		{
			name:    "delete",
			intent:  IntentDelete,
			message: "delete task 7 and 8",
			want:    Parameters{UserID: uid, TaskID: "7"},
		},
		{
			name:    "delete without id",
			intent:  IntentDelete,
			message: "delete it",
			want:    Parameters{UserID: uid},
		},
		{
			name:    "get",
			intent:  IntentGet,
			message: "get task 42",
			want:    Parameters{UserID: uid, TaskID: "42"},
		},
		{
			name:    "update with to",
			intent:  IntentUpdate,
			message: "change task 1 to buy milk",
			want:    Parameters{UserID: uid, TaskID: "1", Title: "buy milk"},
		},
		{
			name:    "update keeps casing",
			intent:  IntentUpdate,
			message: "rename 3 Weekly Report",
			want:    Parameters{UserID: uid, TaskID: "3", Title: "Weekly Report"},
		},
		{
			name:    "update without match",
			intent:  IntentUpdate,
			message: "update my task",
			want:    Parameters{UserID: uid},
		},
		{
			name:    "unknown carries only the user",
			intent:  IntentUnknown,
			message: "hello 5",
			want:    Parameters{UserID: uid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractParameters(tt.intent, tt.message, uid))
		})
	}
}

func TestExtractParameters_Idempotent(t *testing.T) {
	want := Parameters{UserID: "u-9", Title: "buy milk at the store"}
	for i := 0; i < 50; i++ {
		assert.Equal(t, want, ExtractParameters(IntentAdd, "add buy milk at the store", "u-9"))
	}
}

func TestParameters_Map(t *testing.T) {
	p := Parameters{UserID: "u", TaskID: "5", Completed: boolPtr(false)}
	assert.Equal(t, map[string]any{"user_id": "u", "task_id": "5", "completed": false}, p.Map())

	assert.Equal(t, map[string]any{"user_id": "u", "title": "x"}, Parameters{UserID: "u", Title: "x"}.Map())
}
