package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-chat-agent/internal/conversation"
	repo "task-chat-agent/internal/conversation/repository"
	"task-chat-agent/internal/model"
)

// Load reads the conversation and its full history for sc.UserID.
func (uc *implUseCase) Load(ctx context.Context, sc model.Scope, conversationID string) (*conversation.Turn, error) {
	c, err := uc.getOwned(ctx, sc, conversationID)
	if err != nil {
		return nil, err
	}

	history, err := uc.repo.ListMessages(ctx, c.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.Load ListMessages: %v", err)
		return nil, err
	}

	return &conversation.Turn{Conversation: c, History: history}, nil
}

// Create allocates a conversation in memory. It is written by the first Commit.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope) (*conversation.Turn, error) {
	if sc.UserID == "" {
		return nil, conversation.ErrMissingUser
	}

	now := uc.now().UTC()
	return &conversation.Turn{
		Conversation: conversation.Conversation{
			ID:        uc.newID(),
			UserID:    sc.UserID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		History: []conversation.Message{},
		IsNew:   true,
	}, nil
}

// PersistTurn stages a message on turn. It becomes visible only after Commit.
func (uc *implUseCase) PersistTurn(ctx context.Context, sc model.Scope, turn *conversation.Turn, input conversation.PersistTurnInput) (conversation.Message, error) {
	if turn == nil {
		return conversation.Message{}, conversation.ErrNilTurn
	}
	if sc.UserID == "" || turn.Conversation.UserID != sc.UserID {
		return conversation.Message{}, conversation.ErrAccessDenied
	}
	if !input.Sender.Valid() {
		return conversation.Message{}, conversation.ErrInvalidSender
	}
	if strings.TrimSpace(input.Content) == "" {
		return conversation.Message{}, conversation.ErrEmptyContent
	}

	m := conversation.Message{
		ID:             uc.newID(),
		ConversationID: turn.Conversation.ID,
		UserID:         turn.Conversation.UserID,
		Sender:         input.Sender,
		Content:        input.Content,
		ToolCalls:      input.ToolCalls,
		CreatedAt:      stagedAt(turn, uc.now().UTC()),
	}
	turn.Pending = append(turn.Pending, m)
	return m, nil
}

// Commit writes the staged messages, inserting the conversation first when it is new.
func (uc *implUseCase) Commit(ctx context.Context, turn *conversation.Turn) error {
	if turn == nil {
		return conversation.ErrNilTurn
	}
	if !turn.IsNew && len(turn.Pending) == 0 {
		return nil
	}

	updatedAt := uc.now().UTC()
	for _, m := range turn.Pending {
		if m.CreatedAt.After(updatedAt) {
			updatedAt = m.CreatedAt
		}
	}

	if err := uc.repo.CommitTurn(ctx, repo.CommitTurnOptions{
		Conversation: turn.Conversation,
		IsNew:        turn.IsNew,
		UpdatedAt:    updatedAt,
		Messages:     turn.Pending,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.Commit: conversation=%s: %v", turn.Conversation.ID, err)
		return err
	}

	turn.History = append(turn.History, turn.Pending...)
	turn.Pending = nil
	turn.IsNew = false
	turn.Conversation.UpdatedAt = updatedAt
	return nil
}

// stagedAt keeps message timestamps non-decreasing within a conversation
// when the wall clock steps backwards.
func stagedAt(turn *conversation.Turn, now time.Time) time.Time {
	last := turn.Conversation.CreatedAt
	if n := len(turn.History); n > 0 && turn.History[n-1].CreatedAt.After(last) {
		last = turn.History[n-1].CreatedAt
	}
	if n := len(turn.Pending); n > 0 && turn.Pending[n-1].CreatedAt.After(last) {
		last = turn.Pending[n-1].CreatedAt
	}
	if now.Before(last) {
		return last
	}
	return now
}

// getOwned loads a conversation and checks that sc.UserID owns it.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, conversationID string) (conversation.Conversation, error) {
	if sc.UserID == "" {
		return conversation.Conversation{}, conversation.ErrMissingUser
	}
	id, err := uuid.Parse(strings.TrimSpace(conversationID))
	if err != nil {
		return conversation.Conversation{}, conversation.ErrInvalidConversationID
	}

	c, err := uc.repo.GetConversation(ctx, id.String())
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.getOwned: %v", err)
		return conversation.Conversation{}, err
	}
	if c.ID == "" {
		return conversation.Conversation{}, conversation.ErrConversationNotFound
	}
	if c.UserID != sc.UserID {
		uc.l.Warnf(ctx, "internal.conversation.usecase.getOwned: user=%s denied conversation=%s", sc.UserID, c.ID)
		return conversation.Conversation{}, conversation.ErrAccessDenied
	}
	return c, nil
}
