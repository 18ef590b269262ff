package usecase

import (
	"context"

	"task-chat-agent/internal/conversation"
	repo "task-chat-agent/internal/conversation/repository"
	"task-chat-agent/internal/model"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// History returns a conversation with its messages, oldest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, conversationID string) (conversation.HistoryOutput, error) {
	turn, err := uc.Load(ctx, sc, conversationID)
	if err != nil {
		return conversation.HistoryOutput{}, err
	}
	return conversation.HistoryOutput{Conversation: turn.Conversation, Messages: turn.History}, nil
}

// ListConversations pages through the caller's conversations, most recently updated first.
func (uc *implUseCase) ListConversations(ctx context.Context, sc model.Scope, input conversation.ListConversationsInput) (conversation.ListConversationsOutput, error) {
	if sc.UserID == "" {
		return conversation.ListConversationsOutput{}, conversation.ErrMissingUser
	}

	limit := input.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := max(input.Offset, 0)

	list, err := uc.repo.ListConversations(ctx, repo.ListConversationsOptions{
		UserID: sc.UserID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.ListConversations: %v", err)
		return conversation.ListConversationsOutput{}, err
	}

	return conversation.ListConversationsOutput{Conversations: list, Limit: limit, Offset: offset}, nil
}
