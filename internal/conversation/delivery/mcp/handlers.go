package mcp

import (
	"context"

	mcpproto "github.com/mark3labs/mcp-go/mcp"

	"task-chat-agent/internal/conversation"
	"task-chat-agent/internal/model"
	"task-chat-agent/pkg/mcptool"
)

func (h *handler) fail(ctx context.Context, tool string, err error) (*mcpproto.CallToolResult, error) {
	code := conversation.Code(err)
	if code >= 500 {
		h.l.Errorf(ctx, "internal.conversation.delivery.mcp.%s: %v", tool, err)
	}
	return mcptool.Error(err, code), nil
}

func (h *handler) Summarize(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	sc := model.Scope{UserID: req.GetString("user_id", "")}
	s, err := h.uc.Summarize(ctx, sc, req.GetString("conversation_id", ""))
	if err != nil {
		return h.fail(ctx, "Summarize", err)
	}
	return mcptool.JSON(newSummaryResp(s))
}

func (h *handler) SelectRelevant(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	sc := model.Scope{UserID: req.GetString("user_id", "")}
	out, err := h.uc.SelectRelevant(ctx, sc, req.GetString("conversation_id", ""), req.GetInt("max_messages", h.relevantMessages))
	if err != nil {
		return h.fail(ctx, "SelectRelevant", err)
	}
	return mcptool.JSON(newRelevantResp(out))
}
