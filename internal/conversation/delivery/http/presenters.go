package http

import (
	"encoding/json"
	"time"

	"task-chat-agent/internal/conversation"
)

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() conversation.ListConversationsInput {
	return conversation.ListConversationsInput{Limit: r.Limit, Offset: r.Offset}
}

type conversationResp struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newConversationResp(c conversation.Conversation) conversationResp {
	return conversationResp{ID: c.ID, UserID: c.UserID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

type listResp struct {
	Conversations []conversationResp `json:"conversations"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}

func (h *handler) newListResp(out conversation.ListConversationsOutput) listResp {
	items := make([]conversationResp, len(out.Conversations))
	for i, c := range out.Conversations {
		items[i] = newConversationResp(c)
	}
	return listResp{Conversations: items, Limit: out.Limit, Offset: out.Offset}
}

type messageResp struct {
	ID        string          `json:"id"`
	Sender    string          `json:"sender"`
	Content   string          `json:"content"`
	ToolCalls json.RawMessage `json:"tool_calls,omitempty" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}

type messagesResp struct {
	Conversation conversationResp `json:"conversation"`
	Messages     []messageResp    `json:"messages"`
}

func (h *handler) newMessagesResp(out conversation.HistoryOutput) messagesResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = messageResp{
			ID:        m.ID,
			Sender:    string(m.Sender),
			Content:   m.Content,
			ToolCalls: m.ToolCalls,
			CreatedAt: m.CreatedAt,
		}
	}
	return messagesResp{Conversation: newConversationResp(out.Conversation), Messages: msgs}
}
