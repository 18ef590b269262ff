package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-chat-agent/internal/agent"
	"task-chat-agent/internal/chat"
	"task-chat-agent/internal/conversation"
	"task-chat-agent/internal/intent"
	"task-chat-agent/internal/model"
)

const (
	logPrefixChat      = "internal.chat.usecase.Chat"
	eventPersistFailed = "TURN_PERSIST_FAILED"
)

// Chat answers one message. Conversation state is read from storage at the start of
// every call; nothing is cached between calls.
//
// The Task Store commits on its own before the turn's messages are written. If the
// message commit fails, the task change stays and ErrPersistTurn is returned.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	turn, err := uc.openTurn(ctx, sc, input.ConversationID)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	if _, err := uc.conversations.PersistTurn(ctx, sc, turn, conversation.PersistTurnInput{
		Sender:  conversation.SenderUser,
		Content: input.Message,
	}); err != nil {
		uc.l.Errorf(ctx, "%s: stage user message: %v", logPrefixChat, err)
		return chat.ChatOutput{}, err
	}

	decideInput := agent.DecideInput{
		Message:        input.Message,
		History:        turn.History,
		IncludeContext: input.IncludeContext,
	}
	if !turn.IsNew {
		decideInput.ConversationID = turn.Conversation.ID
	}
	decision := uc.decider.Decide(ctx, sc, decideInput)

	toolCalls, err := agent.MarshalToolCalls(decision.ToolCalls)
	if err != nil {
		uc.l.Errorf(ctx, "%s: marshal tool calls: %v", logPrefixChat, err)
		return chat.ChatOutput{}, fmt.Errorf("%w: %v", chat.ErrPersistTurn, err)
	}

	if _, err := uc.conversations.PersistTurn(ctx, sc, turn, conversation.PersistTurnInput{
		Sender:    conversation.SenderAssistant,
		Content:   decision.Response,
		ToolCalls: toolCalls,
	}); err != nil {
		uc.l.Errorf(ctx, "%s: stage assistant message: %v", logPrefixChat, err)
		return chat.ChatOutput{}, err
	}

	if err := uc.conversations.Commit(ctx, turn); err != nil {
		uc.l.Errorf(ctx, "%s: event=%s user=%s conversation=%s tool_calls=%s: %v",
			logPrefixChat, eventPersistFailed, sc.UserID, turn.Conversation.ID, string(toolCalls), err)
		return chat.ChatOutput{}, fmt.Errorf("%w: %v", chat.ErrPersistTurn, err)
	}

	return chat.ChatOutput{
		ConversationID:       turn.Conversation.ID,
		AssistantMessage:     decision.Response,
		ToolCalls:            publicToolCalls(decision.ToolCalls),
		RequiresConfirmation: len(decision.ToolCalls) > 0 && intent.ShouldConfirm(decision.Intent.Intent),
	}, nil
}

func (uc *implUseCase) openTurn(ctx context.Context, sc model.Scope, conversationID string) (*conversation.Turn, error) {
	if strings.TrimSpace(conversationID) == "" {
		return uc.conversations.Create(ctx, sc)
	}

	turn, err := uc.conversations.Load(ctx, sc, conversationID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: load conversation=%s user=%s: %v", logPrefixChat, conversationID, sc.UserID, err)
		return nil, err
	}
	return turn, nil
}

func publicToolCalls(calls []agent.ToolInvocation) []chat.ToolCall {
	out := make([]chat.ToolCall, 0, len(calls))
	for _, c := range calls {
		out = append(out, chat.ToolCall{Tool: c.Tool, Parameters: c.Parameters.Map()})
	}
	return out
}
