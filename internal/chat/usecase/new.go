package usecase

import (
	"context"

	"task-chat-agent/internal/agent"
	"task-chat-agent/internal/chat"
	"task-chat-agent/internal/conversation"
	"task-chat-agent/internal/model"
	pkgLog "task-chat-agent/pkg/log"
)

// Decider picks the reply and tool call for one message.
type Decider interface {
	Decide(ctx context.Context, sc model.Scope, in agent.DecideInput) agent.Decision
}

type implUseCase struct {
	l             pkgLog.Logger
	conversations conversation.UseCase
	decider       Decider
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, conversations conversation.UseCase, decider Decider) chat.UseCase {
	return &implUseCase{
		l:             l,
		conversations: conversations,
		decider:       decider,
	}
}
