package http

import (
	"task-chat-agent/internal/chat"
)

type chatReq struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
	IncludeContext bool   `json:"include_context"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
		IncludeContext: r.IncludeContext,
	}
}

type toolCallResp struct {
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters"`
}

type chatResp struct {
	ConversationID       string         `json:"conversation_id"`
	AssistantMessage     string         `json:"assistant_message"`
	ToolCalls            []toolCallResp `json:"tool_calls"`
	RequiresConfirmation bool           `json:"requires_confirmation"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	calls := make([]toolCallResp, len(out.ToolCalls))
	for i, c := range out.ToolCalls {
		params := c.Parameters
		if params == nil {
			params = map[string]any{}
		}
		calls[i] = toolCallResp{Tool: c.Tool, Parameters: params}
	}
	return chatResp{
		ConversationID:       out.ConversationID,
		AssistantMessage:     out.AssistantMessage,
		ToolCalls:            calls,
		RequiresConfirmation: out.RequiresConfirmation,
	}
}
