// Package responder turns a successful tool result into the assistant's reply.
package responder

import (
	"fmt"
	"strings"

	"task-chat-agent/internal/agent"
	"task-chat-agent/internal/intent"
	"task-chat-agent/internal/user"
)

// Context is optional advisory data used to personalize a reply.
type Context struct {
	Name string
}

const (
	msgNoTasks       = "You don't have any tasks yet."
	msgTaskListTitle = "Here are your tasks:"
	msgNoDescription = "No description"
	msgDone          = "Operation completed."
)

// Generate renders the reply for in. It never fails: missing result fields fall
// back to neutral wording.
func Generate(in intent.Intent, res agent.ToolResult, message string, extra *Context) string {
	reply := render(in, res)
	if extra != nil && extra.Name != "" && extra.Name != user.DefaultName {
		reply = fmt.Sprintf("Hi %s! %s", extra.Name, reply)
	}
	return reply
}

func render(in intent.Intent, res agent.ToolResult) string {
	switch in {
	case intent.IntentAdd:
		return "✅ Created task: " + titleOr(res, "task")

	case intent.IntentList:
		if len(res.Tasks) == 0 {
			return msgNoTasks
		}
		var b strings.Builder
		b.WriteString(msgTaskListTitle)
		for _, t := range res.Tasks {
			fmt.Fprintf(&b, "\n- [%d] %s", t.ID, t.Title)
			if t.IsCompleted {
				b.WriteString(" ✓")
			}
		}
		return b.String()

	case intent.IntentComplete:
		if res.Task == nil {
			return msgDone
		}
		if !res.Task.IsCompleted {
			return fmt.Sprintf("↩️ Marked task %d as not done.", res.Task.ID)
		}
		return fmt.Sprintf("✅ Marked task %d as done.", res.Task.ID)

	case intent.IntentDelete:
		if res.Deleted == nil {
			return msgDone
		}
		return fmt.Sprintf("🗑️ Deleted task %d.", res.Deleted.TaskID)

	case intent.IntentUpdate:
		return "✏️ Updated task: " + titleOr(res, "task")

	case intent.IntentGet:
		description := msgNoDescription
		if res.Task != nil && res.Task.Description != nil {
			description = *res.Task.Description
		}
		return fmt.Sprintf("📋 **%s**\n%s", titleOr(res, "Task"), description)
	}
	return msgDone
}

func titleOr(res agent.ToolResult, fallback string) string {
	if res.Task == nil || res.Task.Title == "" {
		return fallback
	}
	return res.Task.Title
}
