package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		intent     Intent
		confidence float64
	}{
		{"add pattern", "add buy milk", IntentAdd, ConfidencePattern},
		{"add pattern mixed case and padding", "  Add Buy Milk  ", IntentAdd, ConfidencePattern},
		{"new task pattern", "new task call mom", IntentAdd, ConfidencePattern},
		{"i need to pattern", "i need to call mom", IntentAdd, ConfidencePattern},
		{"add keyword", "please add milk", IntentAdd, ConfidenceKeyword},
		{"list pattern", "list my tasks", IntentList, ConfidencePattern},
		{"what tasks pattern", "what tasks do i have", IntentList, ConfidencePattern},
		{"list keyword", "can you show them", IntentList, ConfidenceKeyword},
		{"get pattern", "get task 4", IntentGet, ConfidencePattern},
		{"tell me about pattern", "tell me about task 2", IntentGet, ConfidencePattern},
		{"update pattern", "change task 1 to buy milk", IntentUpdate, ConfidencePattern},
		{"rename pattern", "rename 3 groceries", IntentUpdate, ConfidencePattern},
		{"delete pattern", "delete task 1", IntentDelete, ConfidencePattern},
		{"delete keyword", "please trash it", IntentDelete, ConfidenceKeyword},
		{"complete pattern", "complete task 5", IntentComplete, ConfidencePattern},
		{"mark done pattern", "mark done 5", IntentComplete, ConfidencePattern},
		{"done keyword", "mark task 1 done", IntentComplete, ConfidenceKeyword},
		{"uncomplete keyword", "uncomplete task 5", IntentComplete, ConfidenceKeyword},
		{"unknown", "hello there", IntentUnknown, ConfidenceNone},
		{"empty", "", IntentUnknown, ConfidenceNone},
		{"blank", "   ", IntentUnknown, ConfidenceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.message)
			assert.Equal(t, tt.intent, got.Intent)
			assert.Equal(t, tt.confidence, got.Confidence)
		})
	}
}

func TestExtract_DeclarationOrderBreaksTies(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		intent     Intent
		confidence float64
	}{
		// add pattern and list keyword both match
		{"add pattern beats list keyword", "add show notes", IntentAdd, ConfidencePattern},
		// add and list keywords both match, add is declared first
		{"add keyword beats list keyword", "please show and add notes", IntentAdd, ConfidenceKeyword},
		// a pattern on a later intent beats a keyword on an earlier one
		{"delete pattern beats add keyword", "remove the task i need to add", IntentDelete, ConfidencePattern},
		// list's ^show\s+ is declared before get's ^show task
		{"list pattern shadows show task", "show task 3", IntentList, ConfidencePattern},
		// get's ^get\s+ is declared before delete's ^get rid of
		{"get pattern shadows get rid of", "get rid of task 1", IntentGet, ConfidencePattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.message)
			assert.Equal(t, tt.intent, got.Intent)
			assert.Equal(t, tt.confidence, got.Confidence)
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	messages := []string{"add buy milk", "mark task 1 done", "what's up", "show task 3", "get rid of task 1"}
	for _, m := range messages {
		first := Extract(m)
		for i := 0; i < 100; i++ {
			require.Equal(t, first, Extract(m), "message %q", m)
		}
	}
}

func TestRules(t *testing.T) {
	want := []Intent{IntentAdd, IntentList, IntentGet, IntentUpdate, IntentDelete, IntentComplete}

	got := Rules()
	require.Len(t, got, len(want))
	for i, rule := range got {
		assert.Equal(t, want[i], rule.Intent)
		assert.NotEmpty(t, rule.Patterns, "intent %s has no patterns", rule.Intent)
		assert.NotEmpty(t, rule.Keywords, "intent %s has no keywords", rule.Intent)
		for _, p := range rule.Patterns {
			assert.Equal(t, byte('^'), p.String()[0], "pattern %s is not anchored", p)
		}

		_, ok := ToolName(rule.Intent)
		assert.True(t, ok, "intent %s has no tool", rule.Intent)
		assert.NotEqual(t, FallbackUnknown, Fallback(rule.Intent))
	}
}

func TestResult_Actionable(t *testing.T) {
	assert.True(t, Result{Intent: IntentAdd, Confidence: ConfidencePattern}.Actionable())
	assert.True(t, Result{Intent: IntentAdd, Confidence: ConfidenceKeyword}.Actionable())
	assert.False(t, Result{Intent: IntentAdd, Confidence: 0.4}.Actionable())
	assert.False(t, Result{Intent: IntentUnknown, Confidence: ConfidencePattern}.Actionable())
}

func TestToolName(t *testing.T) {
	tests := map[Intent]string{
		IntentAdd:      "add_task",
		IntentList:     "list_tasks",
		IntentGet:      "get_task",
		IntentUpdate:   "update_task",
		IntentDelete:   "delete_task",
		IntentComplete: "complete_task",
	}
	for in, want := range tests {
		got, ok := ToolName(in)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := ToolName(IntentUnknown)
	assert.False(t, ok)
}

func TestShouldConfirm(t *testing.T) {
	assert.True(t, ShouldConfirm(IntentDelete))
	for _, in := range []Intent{IntentAdd, IntentList, IntentGet, IntentUpdate, IntentComplete, IntentUnknown} {
		assert.False(t, ShouldConfirm(in), "intent %s", in)
	}
}
