package mcp

import (
	"context"

	mcpproto "github.com/mark3labs/mcp-go/mcp"

	"task-chat-agent/internal/agent"
	"task-chat-agent/internal/model"
	"task-chat-agent/internal/task"
	"task-chat-agent/pkg/mcptool"
)

func scope(req mcpproto.CallToolRequest) model.Scope {
	return model.Scope{UserID: req.GetString("user_id", "")}
}

// fail logs err and converts it to a tool error.
func (h *handler) fail(ctx context.Context, tool string, err error) (*mcpproto.CallToolResult, error) {
	code := task.Code(err)
	if code >= 500 {
		h.l.Errorf(ctx, "internal.task.delivery.mcp.%s: %v", tool, err)
	} else {
		h.l.Debugf(ctx, "internal.task.delivery.mcp.%s: %v", tool, err)
	}
	return mcptool.Error(err, code), nil
}

func (h *handler) AddTask(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	out, err := h.uc.Create(ctx, scope(req), task.CreateInput{
		Title:       req.GetString("title", ""),
		Description: req.GetString("description", ""),
		Priority:    req.GetString("priority", ""),
		DueDate:     req.GetString("due_date", ""),
	})
	if err != nil {
		return h.fail(ctx, "AddTask", err)
	}
	return mcptool.JSON(agent.ToolResult{Task: &out.Task})
}

func (h *handler) ListTasks(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	out, err := h.uc.List(ctx, scope(req), task.ListInput{
		IncludeCompleted: req.GetBool("include_completed", true),
	})
	if err != nil {
		return h.fail(ctx, "ListTasks", err)
	}
	tasks := out.Tasks
	if tasks == nil {
		tasks = []task.Task{}
	}
	return mcptool.JSON(agent.ToolResult{Tasks: tasks})
}

func (h *handler) GetTask(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	out, err := h.uc.Detail(ctx, scope(req), mcptool.ID(req, "task_id"))
	if err != nil {
		return h.fail(ctx, "GetTask", err)
	}
	return mcptool.JSON(agent.ToolResult{Task: &out.Task})
}

func (h *handler) UpdateTask(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	out, err := h.uc.Update(ctx, scope(req), task.UpdateInput{
		ID:          mcptool.ID(req, "task_id"),
		Title:       mcptool.OptionalString(req, "title"),
		Description: mcptool.OptionalString(req, "description"),
		Priority:    mcptool.OptionalString(req, "priority"),
		DueDate:     mcptool.OptionalString(req, "due_date"),
	})
	if err != nil {
		return h.fail(ctx, "UpdateTask", err)
	}
	return mcptool.JSON(agent.ToolResult{Task: &out.Task})
}

func (h *handler) DeleteTask(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	out, err := h.uc.Delete(ctx, scope(req), mcptool.ID(req, "task_id"))
	if err != nil {
		return h.fail(ctx, "DeleteTask", err)
	}
	return mcptool.JSON(agent.ToolResult{Deleted: &out})
}

func (h *handler) CompleteTask(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	out, err := h.uc.Complete(ctx, scope(req), task.CompleteInput{
		ID:        mcptool.ID(req, "task_id"),
		Completed: req.GetBool("completed", true),
	})
	if err != nil {
		return h.fail(ctx, "CompleteTask", err)
	}
	return mcptool.JSON(agent.ToolResult{Task: &out.Task})
}
