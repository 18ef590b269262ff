package mcp

import (
	"context"
	"time"

	mcpproto "github.com/mark3labs/mcp-go/mcp"

	"task-chat-agent/internal/user"
	"task-chat-agent/pkg/mcptool"
)

type preferencesResp struct {
	Timezone         string `json:"timezone"`
	Language         string `json:"language"`
	TaskNotification bool   `json:"task_notification"`
}

type accountResp struct {
	UserType string `json:"user_type"`
	Status   string `json:"status"`
}

type contextResp struct {
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	EmailVerified bool            `json:"email_verified"`
	CreatedAt     string          `json:"created_at"`
	Preferences   preferencesResp `json:"preferences"`
	Account       accountResp     `json:"account"`
}

func newContextResp(c user.Context) contextResp {
	return contextResp{
		UserID:        c.UserID,
		Name:          c.Name,
		Email:         c.Email,
		EmailVerified: c.EmailVerified,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
		Preferences: preferencesResp{
			Timezone:         c.Preferences.Timezone,
			Language:         c.Preferences.Language,
			TaskNotification: c.Preferences.TaskNotification,
		},
		Account: accountResp{UserType: c.Account.UserType, Status: c.Account.Status},
	}
}

func (h *handler) GetUserContext(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	out, err := h.uc.GetContext(ctx, req.GetString("user_id", ""))
	if err != nil {
		code := user.Code(err)
		if code >= 500 {
			h.l.Errorf(ctx, "internal.user.delivery.mcp.GetUserContext: %v", err)
		}
		return mcptool.Error(err, code), nil
	}
	return mcptool.JSON(newContextResp(out))
}
