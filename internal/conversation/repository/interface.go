package repository

import (
	"context"

	"task-chat-agent/internal/conversation"
)

//go:generate mockery --name Repository
type Repository interface {
	ConversationRepository
	MessageRepository
}

type ConversationRepository interface {
	// GetConversation returns a zero-value Conversation when not found.
	GetConversation(ctx context.Context, id string) (conversation.Conversation, error)
	ListConversations(ctx context.Context, opt ListConversationsOptions) ([]conversation.Conversation, error)
	// CommitTurn writes the conversation and messages in a single transaction.
	CommitTurn(ctx context.Context, opt CommitTurnOptions) error
}

type MessageRepository interface {
	// ListMessages returns messages oldest first, insertion order breaking ties.
	ListMessages(ctx context.Context, conversationID string) ([]conversation.Message, error)
}
