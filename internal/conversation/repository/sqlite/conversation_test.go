package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-chat-agent/config/sqlite/sqlitetest"
	"task-chat-agent/internal/conversation"
	repo "task-chat-agent/internal/conversation/repository"
	"task-chat-agent/pkg/log"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newConversation(id, userID string) conversation.Conversation {
	return conversation.Conversation{ID: id, UserID: userID, CreatedAt: t0, UpdatedAt: t0}
}

func newMessage(id, convID string, sender conversation.Sender, content string, at time.Time) conversation.Message {
	return conversation.Message{
		ID:             id,
		ConversationID: convID,
		UserID:         "u1",
		Sender:         sender,
		Content:        content,
		CreatedAt:      at,
	}
}

func TestCommitTurnNewConversation(t *testing.T) {
	ctx := context.Background()
	r := New(sqlitetest.New(t), log.NewNop())

	c := newConversation("c1", "u1")
	assistant := newMessage("m2", "c1", conversation.SenderAssistant, "✅ Created task: x", t0)
	assistant.ToolCalls = json.RawMessage(`{"tools":[{"tool":"add_task"}]}`)

	err := r.CommitTurn(ctx, repo.CommitTurnOptions{
		Conversation: c,
		IsNew:        true,
		UpdatedAt:    t0,
		Messages: []conversation.Message{
			newMessage("m1", "c1", conversation.SenderUser, "add x", t0),
			assistant,
		},
	})
	require.NoError(t, err)

	got, err := r.GetConversation(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	msgs, err := r.ListMessages(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID, "same timestamp keeps insertion order")
	assert.Nil(t, msgs[0].ToolCalls)
	assert.Equal(t, "m2", msgs[1].ID)
	assert.JSONEq(t, `{"tools":[{"tool":"add_task"}]}`, string(msgs[1].ToolCalls))
}

func TestListMessagesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := New(sqlitetest.New(t), log.NewNop())

	err := r.CommitTurn(ctx, repo.CommitTurnOptions{
		Conversation: newConversation("c1", "u1"),
		IsNew:        true,
		UpdatedAt:    t0,
		Messages: []conversation.Message{
			newMessage("m1", "c1", conversation.SenderUser, "add x", t0),
			newMessage("m2", "c1", conversation.SenderAssistant, "✅ Created task: x", t0.Add(-time.Second)),
		},
	})
	require.NoError(t, err)

	msgs, err := r.ListMessages(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "m2", msgs[1].ID)
}

func TestCommitTurnTouchesExisting(t *testing.T) {
	ctx := context.Background()
	r := New(sqlitetest.New(t), log.NewNop())

	c := newConversation("c1", "u1")
	require.NoError(t, r.CommitTurn(ctx, repo.CommitTurnOptions{Conversation: c, IsNew: true, UpdatedAt: t0}))

	later := t0.Add(time.Minute)
	require.NoError(t, r.CommitTurn(ctx, repo.CommitTurnOptions{
		Conversation: c,
		UpdatedAt:    later,
		Messages:     []conversation.Message{newMessage("m1", "c1", conversation.SenderUser, "hi", later)},
	}))

	got, err := r.GetConversation(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, t0, got.CreatedAt)
	assert.Equal(t, later, got.UpdatedAt)

	t.Run("touching a missing conversation fails", func(t *testing.T) {
		err := r.CommitTurn(ctx, repo.CommitTurnOptions{Conversation: newConversation("nope", "u1"), UpdatedAt: later})
		assert.ErrorIs(t, err, repo.ErrFailedToCommit)
	})
}

func TestCommitTurnRollsBack(t *testing.T) {
	ctx := context.Background()
	r := New(sqlitetest.New(t), log.NewNop())

	err := r.CommitTurn(ctx, repo.CommitTurnOptions{
		Conversation: newConversation("c1", "u1"),
		IsNew:        true,
		UpdatedAt:    t0,
		Messages: []conversation.Message{
			newMessage("dup", "c1", conversation.SenderUser, "first", t0),
			newMessage("dup", "c1", conversation.SenderAssistant, "second", t0),
		},
	})
	require.ErrorIs(t, err, repo.ErrFailedToCommit)

	got, err := r.GetConversation(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, got.ID, "conversation insert must be rolled back")

	msgs, err := r.ListMessages(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestListConversations(t *testing.T) {
	ctx := context.Background()
	r := New(sqlitetest.New(t), log.NewNop())

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.CommitTurn(ctx, repo.CommitTurnOptions{
			Conversation: newConversation(id, "u1"),
			IsNew:        true,
			UpdatedAt:    t0.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, r.CommitTurn(ctx, repo.CommitTurnOptions{
		Conversation: newConversation("other", "u2"), IsNew: true, UpdatedAt: t0,
	}))

	got, err := r.ListConversations(ctx, repo.ListConversationsOptions{UserID: "u1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	got, err = r.ListConversations(ctx, repo.ListConversationsOptions{UserID: "u1", Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
