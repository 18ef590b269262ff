package chat

import (
	"context"

	"task-chat-agent/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one stateless turn: reconstruct the conversation, decide, persist.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
