package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-chat-agent/config/sqlite/sqlitetest"
	"task-chat-agent/pkg/datemath"
	"task-chat-agent/pkg/log"
)

func TestNew(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	s, err := New(log.NewNop(), Config{
		Name:     "task-chat-agent",
		Version:  "test",
		DB:       sqlitetest.New(t),
		DateMath: parser,
	})
	require.NoError(t, err)

	tools := s.ListTools()
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{
		"add_task", "list_tasks", "get_task", "update_task", "delete_task", "complete_task",
		"get_user_context", "summarize_conversation", "select_relevant_messages",
	}, names)
}

func TestNew_RequiresDB(t *testing.T) {
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	_, err = New(log.NewNop(), Config{DateMath: parser})
	assert.Error(t, err)
}
