package repository

import (
	"time"

	"task-chat-agent/internal/conversation"
)

type ListConversationsOptions struct {
	UserID string
	Limit  int
	Offset int
}

// CommitTurnOptions describes one turn's writes. When IsNew is set the
// conversation row is inserted, otherwise its updated_at is set to UpdatedAt.
type CommitTurnOptions struct {
	Conversation conversation.Conversation
	IsNew        bool
	UpdatedAt    time.Time
	Messages     []conversation.Message
}
