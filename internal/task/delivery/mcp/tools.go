package mcp

import (
	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names exposed by the task store.
const (
	ToolAddTask      = "add_task"
	ToolListTasks    = "list_tasks"
	ToolGetTask      = "get_task"
	ToolUpdateTask   = "update_task"
	ToolDeleteTask   = "delete_task"
	ToolCompleteTask = "complete_task"
)

func userIDArg() mcpproto.ToolOption {
	return mcpproto.WithString("user_id", mcpproto.Required(), mcpproto.Description("Owner of the tasks"))
}

func taskIDArg() mcpproto.ToolOption {
	return mcpproto.WithString("task_id", mcpproto.Required(), mcpproto.Description("Numeric task id"))
}

func priorityArg() mcpproto.ToolOption {
	return mcpproto.WithString("priority",
		mcpproto.Description("Task priority"),
		mcpproto.Enum("high", "medium", "low"),
	)
}

// RegisterTools adds every task tool to s.
func RegisterTools(s *server.MCPServer, h *handler) {
	s.AddTool(mcpproto.NewTool(ToolAddTask,
		mcpproto.WithDescription("Create a new task for the user"),
		userIDArg(),
		mcpproto.WithString("title", mcpproto.Required(), mcpproto.Description("Task title, up to 200 characters")),
		mcpproto.WithString("description", mcpproto.Description("Optional details, up to 2000 characters")),
		priorityArg(),
		mcpproto.WithString("due_date", mcpproto.Description("ISO date (YYYY-MM-DD) or datetime")),
	), h.AddTask)

	s.AddTool(mcpproto.NewTool(ToolListTasks,
		mcpproto.WithDescription("List the user's tasks, newest first"),
		userIDArg(),
		mcpproto.WithBoolean("include_completed", mcpproto.Description("Include completed tasks (default true)")),
	), h.ListTasks)

	s.AddTool(mcpproto.NewTool(ToolGetTask,
		mcpproto.WithDescription("Get one task by id"),
		userIDArg(),
		taskIDArg(),
	), h.GetTask)

	s.AddTool(mcpproto.NewTool(ToolUpdateTask,
		mcpproto.WithDescription("Update the given fields of a task; an empty description or priority clears it"),
		userIDArg(),
		taskIDArg(),
		mcpproto.WithString("title", mcpproto.Description("New title")),
		mcpproto.WithString("description", mcpproto.Description("New description")),
		mcpproto.WithString("priority", mcpproto.Description("high, medium, low, or empty to clear")),
		mcpproto.WithString("due_date", mcpproto.Description("New due date, or empty to clear")),
	), h.UpdateTask)

	s.AddTool(mcpproto.NewTool(ToolDeleteTask,
		mcpproto.WithDescription("Delete a task"),
		userIDArg(),
		taskIDArg(),
	), h.DeleteTask)

	s.AddTool(mcpproto.NewTool(ToolCompleteTask,
		mcpproto.WithDescription("Mark a task done, or not done with completed=false"),
		userIDArg(),
		taskIDArg(),
		mcpproto.WithBoolean("completed", mcpproto.Description("Completion state (default true)")),
	), h.CompleteTask)
}
