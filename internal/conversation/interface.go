package conversation

import (
	"context"

	"task-chat-agent/internal/model"
)

// UseCase reconstructs conversation state from storage on every request.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Load returns the conversation with its full history, oldest first.
	Load(ctx context.Context, sc model.Scope, conversationID string) (*Turn, error)
	// Create allocates a new conversation for sc.UserID. Nothing is written until Commit.
	Create(ctx context.Context, sc model.Scope) (*Turn, error)
	// PersistTurn stages one message on turn.
	PersistTurn(ctx context.Context, sc model.Scope, turn *Turn, input PersistTurnInput) (Message, error)
	// Commit writes the conversation and every staged message atomically.
	Commit(ctx context.Context, turn *Turn) error

	History(ctx context.Context, sc model.Scope, conversationID string) (HistoryOutput, error)
	ListConversations(ctx context.Context, sc model.Scope, input ListConversationsInput) (ListConversationsOutput, error)
	Summarize(ctx context.Context, sc model.Scope, conversationID string) (Summary, error)
	SelectRelevant(ctx context.Context, sc model.Scope, conversationID string, maxMessages int) (RelevantOutput, error)
}
